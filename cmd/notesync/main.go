package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/notesync/internal/client"
	"github.com/MKhiriev/notesync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewBuildInfo(buildVersion, buildDate, buildCommit)

	if err := client.NewRootCommand(info).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
