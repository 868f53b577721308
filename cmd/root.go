package cmd

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"pp-viewer/api"
	"pp-viewer/config"
	"pp-viewer/views"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/net/publicsuffix"
)

var RootCmd = &cobra.Command{
	Use:   "pp-viewer",
	Short: "Browse books, pages and characters served by the pp API",
	Long: `pp-viewer renders the book, page and character records of the pp REST API
as HTML pages, either from a web server (serve) or from the command line
(render, export).`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

type rootArgs struct {
	apiBaseURL string
	cookies    []string
	verbose    bool
}

var (
	rArgs  rootArgs
	cfg    config.Config
	logger *zap.Logger
)

func init() {
	RootCmd.PersistentFlags().StringVar(&rArgs.apiBaseURL, "api-base-url", "", "API origin, overrides PP_API_BASE_URL")
	RootCmd.PersistentFlags().StringArrayVar(&rArgs.cookies, "cookie", nil, "cookie sent to the API as name=value (render and export only)")
	RootCmd.PersistentFlags().BoolVar(&rArgs.verbose, "verbose", false, "enable debug logging")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if rArgs.apiBaseURL != "" {
		cfg.APIBaseURL = rArgs.apiBaseURL
	}

	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	if rArgs.verbose {
		level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zapConfig := zap.NewProductionConfig()
	if cfg.LogDevelopment {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.Level = level
	logger, err = zapConfig.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// newCLIViews builds the views on a client that keeps a cookie jar seeded
// from --cookie, standing in for the browser's cookies.
func newCLIViews() (*views.Views, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	base, err := url.Parse(cfg.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse api base url: %w", err)
	}
	var cookies []*http.Cookie
	for _, raw := range rArgs.cookies {
		name, value, ok := strings.Cut(raw, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid cookie %q, want name=value", raw)
		}
		cookies = append(cookies, &http.Cookie{Name: name, Value: value})
	}
	jar.SetCookies(base, cookies)

	client, err := api.New(cfg.API(), api.WithCookieJar(jar), api.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create api client: %w", err)
	}
	return views.New(client, logger), nil
}
