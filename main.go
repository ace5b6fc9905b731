package main

import "hashtagset/cmd"

func main() {
	cmd.Execute()
}
