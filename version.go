package main

// _version is set at build time with
//
//	-ldflags "-X main._version=..."
var _version = "dev"
