package chainy

// Version is the library version.
const Version = "0.0.1"
