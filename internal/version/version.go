package version

// Version is the tool version reported in output metadata and --version.
const Version = "1.0.0"
