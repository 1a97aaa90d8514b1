/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/moyedaquib-cmd/fitfresh-apiserver/cmd"

func main() {
	cmd.Execute()
}
