// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/CrawX/go-inbox-sentinel/classify"
	"github.com/CrawX/go-inbox-sentinel/config"
	"github.com/CrawX/go-inbox-sentinel/gmailconn"
	"github.com/CrawX/go-inbox-sentinel/log"
	"github.com/CrawX/go-inbox-sentinel/mailsync"
	"github.com/CrawX/go-inbox-sentinel/notify"
	"github.com/CrawX/go-inbox-sentinel/persistence"
	"github.com/CrawX/go-inbox-sentinel/sentinel"
	"github.com/CrawX/go-inbox-sentinel/trainer"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configFile  string
	interactive bool
	limit       int
)

var rootCmd = &cobra.Command{
	Use:   "inbox-sentinel",
	Short: "Watches a Gmail inbox, scores new mail for spam and keeps an auditable decision log",
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll the inbox on a schedule and score every new message",
	Run:   runWatch,
}

var pollCmd = &cobra.Command{
	Use:   "poll",
	Short: "Run a single sync and score cycle",
	Run:   runPoll,
}

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Reset the sync cursor to the mailbox's current position",
	Run:   runBootstrap,
}

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Refit the statistical model from explicitly labeled decisions",
	Run:   runTrain,
}

var decisionsCmd = &cobra.Command{
	Use:   "decisions",
	Short: "Print recent entries from the decision ledger",
	Run:   runDecisions,
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Run the interactive OAuth flow and cache the token",
	Run:   runAuth,
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config.toml", "path to the config file")
	pollCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "prompt for a decision on every new message")
	decisionsCmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of entries to print")
	rootCmd.AddCommand(watchCmd, pollCmd, bootstrapCmd, trainCmd, decisionsCmd, authCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, *logrus.Logger) {
	log.InitLogging("debug")
	logger := log.Logger(log.LOG_MAIN)

	conf, err := config.ReadConfig(configFile)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not load config")
	}

	if conf.Loglevel != nil {
		log.SetLogLevel(*conf.Loglevel)
	}

	return conf, logger
}

func buildSentinel(conf *config.Config, logger *logrus.Logger, extraConfigs ...sentinel.ConfigFunc) (*sentinel.Sentinel, *persistence.Persistence) {
	p, err := persistence.NewPersistence(conf.Database)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not connect to database")
	}

	scorer, err := classify.NewBayesScorer(conf.ModelFile)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not load model")
	}

	gmailConn, err := gmailconn.NewConnection(conf.CredentialsFile, conf.TokenFile)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not connect to gmail")
	}

	syncer := mailsync.NewSyncer(gmailConn, p, conf.FetchConcurrency)

	configs := []sentinel.ConfigFunc{sentinel.SuspiciousLabel(conf.SuspiciousLabel)}
	if conf.DryRun {
		configs = append(configs, sentinel.DryRun())
	} else if conf.AutoAct {
		configs = append(configs, sentinel.AutoAct())
	}
	if conf.Notify {
		configs = append(configs, sentinel.WithNotifier(notify.NewDesktop()))
	}
	configs = append(configs, extraConfigs...)

	s, err := sentinel.NewSentinel(p, gmailConn, scorer, syncer, configs...)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not start sentinel")
	}

	return s, p
}

func runWatch(cmd *cobra.Command, args []string) {
	conf, logger := loadConfig()
	s, p := buildSentinel(conf, logger)
	defer p.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.WithFields(logrus.Fields{"schedule": conf.PollSchedule, "dryrun": conf.DryRun, "autoact": conf.AutoAct}).Info("Watching for new mail")
	if err := s.Watch(ctx, conf.PollSchedule); err != nil {
		logger.WithField("error", err).Fatal("Watching failed")
	}
}

func runPoll(cmd *cobra.Command, args []string) {
	conf, logger := loadConfig()

	configs := []sentinel.ConfigFunc{}
	if interactive {
		configs = append(configs, sentinel.WithPolicy(&sentinel.PromptPolicy{In: os.Stdin, Out: os.Stdout}))
	}

	s, p := buildSentinel(conf, logger, configs...)
	defer p.Close()

	if err := s.RunCycle(); err != nil {
		logger.WithField("error", err).Fatal("Cycle failed")
	}
}

func runBootstrap(cmd *cobra.Command, args []string) {
	conf, logger := loadConfig()

	p, err := persistence.NewPersistence(conf.Database)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not connect to database")
	}
	defer p.Close()

	gmailConn, err := gmailconn.NewConnection(conf.CredentialsFile, conf.TokenFile)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not connect to gmail")
	}

	syncer := mailsync.NewSyncer(gmailConn, p, conf.FetchConcurrency)
	cursor, err := syncer.BootstrapCursor()
	if err != nil {
		logger.WithField("error", err).Fatal("Could not baseline cursor")
	}

	logger.WithField("cursor", cursor).Info("Baseline cursor set")
}

func runTrain(cmd *cobra.Command, args []string) {
	conf, logger := loadConfig()

	p, err := persistence.NewPersistence(conf.Database)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not connect to database")
	}
	defer p.Close()

	scorer, err := classify.NewBayesScorer(conf.ModelFile)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not load model")
	}

	samples, err := trainer.NewTrainer(p, scorer).Retrain(conf.MinTrainSamples)
	if err != nil {
		var notEnough *trainer.ErrNotEnoughSamples
		if errors.As(err, &notEnough) {
			logger.WithFields(logrus.Fields{"have": notEnough.Have, "want": notEnough.Want}).Warn("Not enough labeled decisions yet, label more mail first")
			return
		}
		logger.WithField("error", err).Fatal("Training failed")
	}

	logger.WithField("samples", samples).Info("Model retrained")
}

func runDecisions(cmd *cobra.Command, args []string) {
	conf, logger := loadConfig()

	p, err := persistence.NewPersistence(conf.Database)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not connect to database")
	}
	defer p.Close()

	decisions, err := p.RecentDecisions(limit)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not read decisions")
	}

	for _, d := range decisions {
		fmt.Printf("%6d  %s  %-10s  %.2f  %s  %s\n", d.Id, d.CreatedAt.Format("2006-01-02 15:04"), d.Label, d.Predicted, d.MessageId, d.Explanation)
	}
}

func runAuth(cmd *cobra.Command, args []string) {
	conf, logger := loadConfig()

	if err := gmailconn.Authorize(conf.CredentialsFile, conf.TokenFile); err != nil {
		logger.WithField("error", err).Fatal("Authorization failed")
	}
}
