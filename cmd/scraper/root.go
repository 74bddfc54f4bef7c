package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/shanehull/sensscraper/internal/config"
	"github.com/shanehull/sensscraper/internal/notify"
	"github.com/shanehull/sensscraper/internal/sens"
	"github.com/shanehull/sensscraper/internal/session"
)

var (
	version = "dev"
	commit  = "none"
)

var (
	flagConfig      string
	flagLogLevel    string
	flagChromePath  string
	flagWaitTimeout time.Duration
	flagNavTimeout  time.Duration

	flagSMTPServer string
	flagSMTPPort   int
	flagSMTPUser   string
	flagSMTPPass   string
	flagToEmail    string
	flagFromEmail  string
)

// application is the wiring shared by every subcommand.
type application struct {
	cfg     *config.Config
	logger  zerolog.Logger
	scraper *sens.Scraper
	sess    *session.Session
	email   notify.EmailConfig
}

var app *application

var rootCmd = &cobra.Command{
	Use:   "scraper",
	Short: "SENS headline scraper for JSE tickers",
	Long: "scraper fetches SENS announcement headlines for JSE stock symbols from sharedata.co.za,\n" +
		"keeps the ones from the last five years and exports them to PDF.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "path to config file (default "+config.DefaultPath()+")")
	pf.StringVar(&flagLogLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	pf.StringVar(&flagChromePath, "chrome-path", "", "path to the Chrome/Chromium binary (default: auto-detect)")
	pf.DurationVar(&flagWaitTimeout, "wait-timeout", 0, "how long to wait for news rows to appear (default 5s)")
	pf.DurationVar(&flagNavTimeout, "navigate-timeout", 0, "how long the news page may take to load (default 30s)")

	pf.StringVar(&flagSMTPServer, "smtp-server", "", "SMTP server address (default: smtp.gmail.com)")
	pf.IntVar(&flagSMTPPort, "smtp-port", 0, "SMTP server port (default: 587)")
	pf.StringVar(&flagSMTPUser, "smtp-user", "", "SMTP username (email address)")
	pf.StringVar(&flagSMTPPass, "smtp-pass", "", "SMTP password or App Password")
	pf.StringVar(&flagToEmail, "to-email", "", "recipient email address")
	pf.StringVar(&flagFromEmail, "from-email", "", "sender email address (default: smtp-user)")

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "scraper %s (commit: %s)\n", version, commit)
	},
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := applyFlags(cfg); err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	browser := sens.NewChromeBrowser(sens.ChromeOptions{
		ExecPath:  cfg.Browser.ChromePath,
		UserAgent: cfg.Browser.UserAgent,
	})
	fetcher := sens.NewFetcher(browser, cfg.WaitTimeout(), logger).
		WithNavigateTimeout(cfg.NavigateTimeout())

	app = &application{
		cfg:     cfg,
		logger:  logger,
		scraper: sens.NewScraper(fetcher, logger),
		sess:    session.New(),
		email: notify.EmailConfig{
			SMTPServer: cfg.Email.SMTPServer,
			SMTPPort:   cfg.Email.SMTPPort,
			SMTPUser:   cfg.Email.SMTPUser,
			SMTPPass:   cfg.SMTPPass(),
			FromEmail:  cfg.Email.FromEmail,
			ToEmail:    cfg.Email.ToEmail,
		},
	}
	return nil
}

// applyFlags lets explicitly set flags win over the config file.
func applyFlags(cfg *config.Config) error {
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagChromePath != "" {
		cfg.Browser.ChromePath = flagChromePath
	}
	if flagWaitTimeout != 0 {
		ms, err := timeoutMillis("wait-timeout", flagWaitTimeout)
		if err != nil {
			return err
		}
		cfg.Browser.WaitTimeoutMS = ms
	}
	if flagNavTimeout != 0 {
		ms, err := timeoutMillis("navigate-timeout", flagNavTimeout)
		if err != nil {
			return err
		}
		cfg.Browser.NavigateTimeoutMS = ms
	}
	if flagSMTPServer != "" {
		cfg.Email.SMTPServer = flagSMTPServer
	}
	if flagSMTPPort != 0 {
		cfg.Email.SMTPPort = flagSMTPPort
	}
	if flagSMTPUser != "" {
		cfg.Email.SMTPUser = flagSMTPUser
	}
	if flagSMTPPass != "" {
		cfg.Email.SMTPPass = flagSMTPPass
	}
	if flagToEmail != "" {
		cfg.Email.ToEmail = flagToEmail
	}
	if flagFromEmail != "" {
		cfg.Email.FromEmail = flagFromEmail
	}
	return nil
}

// timeoutMillis converts a timeout flag to whole milliseconds, the unit the
// config file uses. Anything below 1ms would round to "unset".
func timeoutMillis(name string, d time.Duration) (int, error) {
	if d < time.Millisecond {
		return 0, fmt.Errorf("--%s must be at least 1ms, got %s", name, d)
	}
	return int(d / time.Millisecond), nil
}

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	if level == "" {
		level = "info"
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
