package main

import (
	"os"

	drupalsettings "github.com/arthur-debert/drupal-settings/cmd/drupal-settings"
)

func main() {
	os.Exit(drupalsettings.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
