package config

import (
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Host          string        `koanf:"host"`
	Frontend      Frontend      `koanf:"frontend"`
	Database      Database      `koanf:"db"`
	Google        Google        `koanf:"google"`
	Notifications Notifications `koanf:"notifications"`
	// WeekFirstDay is the day a week starts on ("monday" or "sunday").
	// Week-based statistics shift at week boundaries depending on this value.
	WeekFirstDay string `koanf:"weekfirstday"`
}

type Frontend struct {
	Enabled bool `koanf:"enabled"`
}

type Database struct {
	Path string `koanf:"path"`
}

type Google struct {
	ClientId     string `koanf:"clientid"`
	ClientSecret string `koanf:"clientsecret"`
}

type Notifications struct {
	Enabled bool `koanf:"enabled"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Host: "http://localhost:3000",
		Frontend: Frontend{
			Enabled: true,
		},
		Database: Database{
			Path: "habitrail.db",
		},
		Notifications: Notifications{
			Enabled: false,
		},
		WeekFirstDay: "monday",
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "HABITRAIL_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "HABITRAIL_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}

// WeekStart translates the configured week first day into a time.Weekday.
// Unknown values fall back to Monday.
func (a Application) WeekStart() time.Weekday {
	switch strings.ToLower(a.WeekFirstDay) {
	case "sunday":
		return time.Sunday
	case "monday", "":
		return time.Monday
	default:
		log.Warnf("unknown weekFirstDay %q, falling back to monday", a.WeekFirstDay)
		return time.Monday
	}
}
