package version

// Version is overridden at build time via
// -ldflags "-X github.com/Ranamom/cpuid-dump/version.Version=...".
var Version = "0.0.0"
