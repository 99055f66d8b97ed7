package main

import (
	_ "embed"
	"strings"

	"go.uber.org/zap"

	"github.com/campanalytics/funnelboard/internal/cli"
	"github.com/campanalytics/funnelboard/internal/logging"
)

//go:embed VERSION
var versionFile string

//go:embed dashboard.html
var dashboardTemplate []byte

//go:embed index.html
var indexTemplate []byte

var executeCLI = cli.Execute

func run() error {
	version := strings.TrimSpace(versionFile)
	return executeCLI(version, dashboardTemplate, indexTemplate)
}

func main() {
	if err := run(); err != nil {
		logging.Fatal("funnelboard execution failed", zap.Error(err))
	}
}
