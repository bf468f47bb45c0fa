package main

import "kittyhaven/cmd/kh/root"

func main() {
	root.Execute()
}
