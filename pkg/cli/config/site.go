package config

import (
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	domainConfig "github.com/secmon-lab/materia/pkg/domain/model/config"
	"github.com/urfave/cli/v3"
)

// Site loads the page branding from an optional TOML file.
type Site struct {
	configPath string
}

// siteFile is the TOML shape of the branding file. Empty fields keep
// their defaults.
type siteFile struct {
	Title   string `toml:"title"`
	Heading string `toml:"heading"`
}

// Validate checks if the siteFile is valid
func (s *siteFile) Validate() error {
	if strings.ContainsAny(s.Title, "\r\n") {
		return goerr.Wrap(ErrInvalidSiteConfig, "title must be a single line")
	}
	if strings.ContainsAny(s.Heading, "\r\n") {
		return goerr.Wrap(ErrInvalidSiteConfig, "heading must be a single line")
	}
	return nil
}

func (x *Site) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "site-config",
			Usage:       "Path to a TOML file with page branding (title, heading)",
			Category:    "Site",
			Sources:     cli.EnvVars("MATERIA_SITE_CONFIG"),
			Destination: &x.configPath,
		},
	}
}

// Configure loads the branding file when one is given, falling back to
// the built-in defaults otherwise.
func (x *Site) Configure() (*domainConfig.Site, error) {
	if x.configPath == "" {
		return domainConfig.DefaultSite(), nil
	}
	return LoadSite(x.configPath)
}

// LoadSite reads the branding file at path and applies it on top of the
// built-in defaults.
func LoadSite(path string) (*domainConfig.Site, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read site config file",
			goerr.V(ConfigPathKey, path),
		)
	}

	var file siteFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML site config",
			goerr.V(ConfigPathKey, path),
		)
	}

	if err := file.Validate(); err != nil {
		return nil, goerr.Wrap(err, "site config validation failed",
			goerr.V(ConfigPathKey, path),
		)
	}

	site := domainConfig.DefaultSite()
	if file.Title != "" {
		site.Title = file.Title
	}
	if file.Heading != "" {
		site.Heading = file.Heading
	}
	return site, nil
}
