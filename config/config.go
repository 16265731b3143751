// Package config holds the global, YAML-driven configuration every other
// package in this module reads from: a package-level Config variable,
// SetDefaultConfig for the baked-in defaults, ReadConfigFile to overlay a
// file, and assertConfigInvariants to reject an unusable configuration
// early.
package config

import (
	"fmt"
	"io/ioutil"
	"strings"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/frejajensen9/web-based-search-engine-24/internal/logging"
)

// Config is the configuration instance the rest of the module should read
// from. It is populated once at process start by init (from Name if that
// file exists) and may be reloaded explicitly via ReadConfigFile.
var Config SearchEngineConfig

// Name is the path (relative or absolute) to the YAML config file read on
// startup and by ReadConfigFile.
var Name = "searchengine.yaml"

func init() {
	if err := readConfig(); err != nil {
		if strings.Contains(err.Error(), "no such file or directory") {
			logging.Info("did not find config file %v, continuing with defaults", Name)
		} else {
			panic(err.Error())
		}
	}
}

// SearchEngineConfig defines the available global configuration sections.
type SearchEngineConfig struct {
	Fetcher struct {
		UserAgent          string `yaml:"user_agent"`
		ConnectTimeout     string `yaml:"connect_timeout"`
		ReadTimeout        string `yaml:"read_timeout"`
		MaxRedirects       int    `yaml:"max_redirects"`
		MaxContentBytes    int64  `yaml:"max_content_bytes"`
		MaxDNSCacheEntries int    `yaml:"max_dns_cache_entries"`
	} `yaml:"fetcher"`

	Crawler struct {
		DefaultMaxPages int      `yaml:"default_max_pages"`
		Seeds           []string `yaml:"seeds"`
	} `yaml:"crawler"`

	Index struct {
		StopWordFile string `yaml:"stop_word_file"`
		StorePath    string `yaml:"store_path"`
	} `yaml:"index"`

	Console struct {
		Port              int    `yaml:"port"`
		TemplateDirectory string `yaml:"template_directory"`
		PublicFolder      string `yaml:"public_folder"`
		SessionSecret     string `yaml:"session_secret"`
		ResultCacheSize   int    `yaml:"result_cache_size"`
	} `yaml:"console"`
}

// SetDefaultConfig resets Config to its baked-in defaults, regardless of
// what any configuration file previously set.
func SetDefaultConfig() {
	// NOTE: go-yaml has a bug where it appends to sequence values instead of
	// overwriting them (https://github.com/go-yaml/yaml/issues/48); readConfig
	// resets sequence fields to an empty slice before unmarshaling, so a
	// file's sequence replaces the default rather than extending it.
	Config.Fetcher.UserAgent = "web-based-search-engine-24 crawler"
	Config.Fetcher.ConnectTimeout = "5s"
	Config.Fetcher.ReadTimeout = "5s"
	Config.Fetcher.MaxRedirects = 5
	Config.Fetcher.MaxContentBytes = 10 * 1024 * 1024
	Config.Fetcher.MaxDNSCacheEntries = 20000

	Config.Crawler.DefaultMaxPages = 1000
	Config.Crawler.Seeds = nil

	Config.Index.StopWordFile = "stopwords.txt"
	Config.Index.StorePath = "index.db"

	Config.Console.Port = 3000
	Config.Console.TemplateDirectory = "console/templates"
	Config.Console.PublicFolder = "console/public"
	Config.Console.SessionSecret = "change-me"
	Config.Console.ResultCacheSize = 1000
}

// ReadConfigFile points Name at path and reloads Config from it.
func ReadConfigFile(path string) error {
	Name = path
	return readConfig()
}

func assertConfigInvariants() error {
	var errs []string

	if _, err := time.ParseDuration(Config.Fetcher.ConnectTimeout); err != nil {
		errs = append(errs, fmt.Sprintf("fetcher.connect_timeout failed to parse: %v", err))
	}
	if _, err := time.ParseDuration(Config.Fetcher.ReadTimeout); err != nil {
		errs = append(errs, fmt.Sprintf("fetcher.read_timeout failed to parse: %v", err))
	}
	if Config.Fetcher.MaxRedirects < 0 {
		errs = append(errs, "fetcher.max_redirects must be >= 0")
	}
	if Config.Crawler.DefaultMaxPages < 1 {
		errs = append(errs, "crawler.default_max_pages must be > 0")
	}
	if Config.Index.StorePath == "" {
		errs = append(errs, "index.store_path must not be empty")
	}

	if len(errs) > 0 {
		msg := ""
		for _, e := range errs {
			logging.Error("config error: %v", e)
			msg += "\t" + e + "\n"
		}
		return fmt.Errorf("config error:\n%v", msg)
	}
	return nil
}

func readConfig() error {
	SetDefaultConfig()

	// See NOTE in SetDefaultConfig regarding sequence values.
	Config.Crawler.Seeds = []string{}

	data, err := ioutil.ReadFile(Name)
	if err != nil {
		return fmt.Errorf("failed to read config file (%v): %w", Name, err)
	}
	if err := yaml.Unmarshal(data, &Config); err != nil {
		return fmt.Errorf("failed to unmarshal yaml from config file (%v): %w", Name, err)
	}

	if err := assertConfigInvariants(); err != nil {
		return err
	}
	logging.Info("loaded config file %v", Name)
	return nil
}
