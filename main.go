package main

import "github.com/CodeHadIt/caltrack/cmd/caltrack"

func main() {
	caltrack.Execute()
}
