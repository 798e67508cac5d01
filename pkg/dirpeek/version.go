package dirpeek

var Version = "0.1.0"
