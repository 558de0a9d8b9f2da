package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

const ContentType = "application/activity+json"

type Configuration struct {
	// Name of the instance, used for the instance actor's display name.
	Name string
	// Domain is the name of the host running the application.
	Domain string
	Https  bool
	Port   uint16
	// Url is the instance's url, derived from Https and Domain.
	Url *url.URL
	// DbUrl is the path to the database file.
	DbUrl string
	// TasksDbUrl is the path to the database file backing the task queue.
	// Kept separate from the main database so queue churn does not
	// contend with handler transactions.
	TasksDbUrl       string
	MigrationsFolder string
	// RsaKeySize specifies the size of the RSA keys used to sign outgoing
	// activities.
	RsaKeySize int

	// ManualFollowApproval specifies whether instance-level follows sit in
	// pending until an administrator accepts them.
	ManualFollowApproval bool
	// FollowsDisabled rejects instance-level follows outright with a
	// signed Reject.
	FollowsDisabled bool
	// AutoFollowBack, when a whole-instance actor follows this server,
	// enqueues a Follow toward that instance in return.
	AutoFollowBack bool

	// CrawlPageLimit is the hard ceiling on pages fetched per collection
	// crawl, regardless of how many next links the remote offers.
	CrawlPageLimit int
	// ThreadDepthLimit bounds the recursive climb of remote reply chains.
	ThreadDepthLimit int
	// RefreshInterval is the staleness threshold for cached remote
	// objects.
	RefreshInterval time.Duration
	// HealthFlushInterval is the cadence at which the in-memory peer
	// scores are drained into the follow table.
	HealthFlushInterval time.Duration
	// DeliveryWorkers bounds the task queue's worker concurrency.
	DeliveryWorkers int

	// Debug, if true, will make the application log all HTTP requests and
	// other events.
	Debug bool
}

// ReadConfig loads vidfed.yaml from the working directory or /etc/vidfed,
// with VIDFED_* environment variables taking precedence.
func ReadConfig() (Configuration, error) {
	v := viper.New()
	v.SetConfigName("vidfed")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/vidfed")
	v.SetEnvPrefix("vidfed")
	v.AutomaticEnv()

	v.SetDefault("port", 8080)
	v.SetDefault("https", true)
	v.SetDefault("dburl", "vidfed.db")
	v.SetDefault("tasksdburl", "vidfed-tasks.db")
	v.SetDefault("migrationsfolder", "migrations")
	v.SetDefault("rsakeysize", 2048)
	v.SetDefault("crawlpagelimit", 10)
	v.SetDefault("threaddepthlimit", 25)
	v.SetDefault("refreshinterval", 24*time.Hour)
	v.SetDefault("healthflushinterval", time.Minute)
	v.SetDefault("deliveryworkers", 4)

	var cfg Configuration
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	if cfg.Domain == "" {
		return cfg, fmt.Errorf("config: domain is required")
	}

	scheme := "https"
	if !cfg.Https {
		scheme = "http"
	}
	u, err := url.Parse(scheme + "://" + cfg.Domain)
	if err != nil {
		return cfg, fmt.Errorf("config: bad domain %q: %w", cfg.Domain, err)
	}
	cfg.Url = u

	return cfg, nil
}
