package main

import "bucket-provisioner/cmd"

func main() {
	cmd.Execute()
}
