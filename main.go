package main

import (
	"os"

	"blog-api/cmd"
)

// @title Blog API
// @version 1.0
// @description CRUD API for blog articles, tags and comments.
// @BasePath /
func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
