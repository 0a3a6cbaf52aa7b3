package version

// Version is overridden at build time with -ldflags "-X goprop/internal/version.Version=...".
var Version = "dev"
