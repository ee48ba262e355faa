package main

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/breml/rootcerts"
	"github.com/qdm12/goservices"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/ipa-dnsrecord/internal/config"
	"github.com/qdm12/ipa-dnsrecord/internal/dnsrecord"
	"github.com/qdm12/ipa-dnsrecord/internal/health"
	"github.com/qdm12/ipa-dnsrecord/internal/ipa"
	"github.com/qdm12/ipa-dnsrecord/internal/models"
	"github.com/qdm12/ipa-dnsrecord/internal/reconciler"
	"github.com/qdm12/ipa-dnsrecord/internal/server"
	"github.com/qdm12/ipa-dnsrecord/internal/shoutrrr"
	"github.com/qdm12/ipa-dnsrecord/internal/trigger"
	"github.com/qdm12/ipa-dnsrecord/internal/verify"
	"github.com/qdm12/log"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	reader := reader.New(reader.Settings{
		HandleDeprecatedKey: func(source, oldKey, newKey string) {
			logger.Warnf("%q key %s is deprecated, please use %q instead",
				source, oldKey, newKey)
		},
	})

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	ctx, cancel := context.WithCancel(ctx)

	errorCh := make(chan error)
	go func() {
		errorCh <- _main(ctx, reader, os.Args, logger, buildInfo)
	}()

	select {
	case <-ctx.Done():
		stop()
		logger.Warn("Caught OS signal, shutting down")
	case err := <-errorCh:
		stop()
		close(errorCh)
		if err == nil { // expected exit such as healthcheck
			os.Exit(0)
		}
		logger.Error(err.Error())
		cancel()
	}

	const shutdownGracePeriod = 5 * time.Second
	timer := time.NewTimer(shutdownGracePeriod)
	select {
	case err := <-errorCh:
		if !timer.Stop() {
			<-timer.C
		}
		if err != nil {
			logger.Error(err.Error())
		}
		logger.Info("Shutdown successful")
	case <-timer.C:
		logger.Warn("Shutdown timed out")
	}

	os.Exit(1)
}

func _main(ctx context.Context, reader *reader.Reader, args []string,
	logger log.LoggerInterface, buildInfo models.BuildInformation) (err error) {
	serveMode := false
	if len(args) > 1 {
		switch args[1] {
		case "version", "-version", "--version":
			fmt.Println(buildInfo.VersionString())
			return nil
		case "healthcheck":
			// Running the program in a separate ephemeral instance
			// to query the serve mode instance about its status.
			var healthSettings config.Health
			healthSettings.Read(reader)
			healthSettings.SetDefaults()
			err = healthSettings.Validate()
			if err != nil {
				return fmt.Errorf("health settings: %w", err)
			}

			client := health.NewClient()
			return client.Query(ctx, *healthSettings.ServerAddress)
		case "serve":
			serveMode = true
		}
	}

	printSplash(buildInfo)

	config, err := readConfig(reader, logger)
	if err != nil {
		return err
	}

	shoutrrrSettings := shoutrrr.Settings{
		Addresses:    config.Shoutrrr.Addresses,
		DefaultTitle: config.Shoutrrr.DefaultTitle,
		Logger:       logger.New(log.SetComponent("shoutrrr")),
	}
	shoutrrrClient, err := shoutrrr.New(shoutrrrSettings)
	if err != nil {
		return fmt.Errorf("setting up Shoutrrr: %w", err)
	}

	httpClient := makeHTTPClient(config)
	defer httpClient.CloseIdleConnections()

	ipaClient := ipa.New(ipa.Settings{
		BaseURL:    config.IPA.BaseURL(),
		HTTPClient: httpClient,
		Logger:     logger.New(log.SetComponent("ipa client")),
	})

	err = ipaClient.Login(ctx, config.IPA.Username, config.IPA.Password)
	if err != nil {
		shoutrrrClient.Notify(err.Error())
		return fmt.Errorf("logging in to %s: %w", config.IPA.BaseURL(), err)
	}

	desired, state, err := config.Record.Desired()
	if err != nil {
		return fmt.Errorf("converting record settings: %w", err)
	}

	reconcilerLogger := logger.New(log.SetComponent("reconciler"))
	rec := reconciler.New(ipaClient, reconcilerLogger, *config.Record.CheckMode)

	var verifier *verify.Verifier
	if *config.Record.Verify {
		address := *config.Resolver.Address
		if address == "" {
			address = net.JoinHostPort(config.IPA.Host, "53")
		}
		verifier = verify.New(verify.Settings{
			Address: address,
			Timeout: config.Resolver.Timeout,
		})
	}

	if !serveMode {
		return reconcileOnce(ctx, rec, verifier, shoutrrrClient, desired, state)
	}

	triggerService := trigger.New(trigger.Settings{
		Desired:    desired,
		State:      state,
		Period:     config.Update.Period,
		Reconciler: rec,
		Verifier:   verifierOrNil(verifier),
		Notifier:   shoutrrrClient,
		Logger:     logger.New(log.SetComponent("trigger")),
	})

	services := []goservices.Service{triggerService}

	healthLogger := logger.New(log.SetComponent("healthcheck server"))
	healthServer, err := health.NewServer(*config.Health.ServerAddress,
		healthLogger, health.MakeIsHealthy(triggerService))
	if err != nil {
		return fmt.Errorf("creating health server: %w", err)
	}
	services = append(services, healthServer)

	if *config.Server.Enabled {
		serverLogger := logger.New(log.SetComponent("http server"))
		mainServer, err := server.New(server.Settings{
			Address: config.Server.ListeningAddress,
			RootURL: config.Server.RootURL,
			Logger:  serverLogger,
			Trigger: triggerService,
			Finder:  ipaClient,
			Zone:    desired.Zone,
			Name:    desired.Name,
		})
		if err != nil {
			return fmt.Errorf("creating server: %w", err)
		}
		services = append(services, mainServer)
	}

	servicesSequence, err := goservices.NewSequence(goservices.SequenceSettings{
		ServicesStart: services,
		ServicesStop:  reverse(services),
	})
	if err != nil {
		return fmt.Errorf("creating services sequence: %w", err)
	}

	runError, startErr := servicesSequence.Start(ctx)
	if startErr != nil {
		return fmt.Errorf("starting services: %w", startErr)
	}

	// initial reconciliation; errors are logged and notified
	// within the trigger service.
	go func() { _, _ = triggerService.ReconcileNow(ctx) }()

	select {
	case <-ctx.Done():
	case err = <-runError:
		shoutrrrClient.Notify(err.Error())
		return fmt.Errorf("exiting due to critical error: %w", err)
	}

	err = servicesSequence.Stop()
	if err != nil {
		shoutrrrClient.Notify(err.Error())
		return fmt.Errorf("stopping failed: %w", err)
	}

	return nil
}

func reconcileOnce(ctx context.Context, rec *reconciler.Reconciler,
	verifier *verify.Verifier, shoutrrrClient *shoutrrr.Client,
	desired dnsrecord.Desired, state dnsrecord.State) (err error) {
	result, err := rec.Reconcile(ctx, desired, state)
	if err != nil {
		shoutrrrClient.Notify(err.Error())
		return err
	}

	if verifier != nil {
		err = verifier.Verify(ctx, desired, state)
		if err != nil {
			shoutrrrClient.Notify(err.Error())
			return err
		}
	}

	if result.Changed {
		shoutrrrClient.Notify("record " + desired.Name + " in zone " +
			desired.Zone + " reconciled to state " + string(state))
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	err = encoder.Encode(result)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	return nil
}

func makeHTTPClient(config config.Config) (httpClient *http.Client) {
	httpClient = &http.Client{Timeout: config.Client.Timeout}
	if !*config.IPA.ValidateCerts {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true, //nolint:gosec
		}
		httpClient.Transport = transport
	}
	return httpClient
}

func verifierOrNil(verifier *verify.Verifier) trigger.Verifier {
	if verifier == nil {
		return nil
	}
	return verifier
}

func reverse(services []goservices.Service) (reversed []goservices.Service) {
	reversed = make([]goservices.Service, len(services))
	for i, service := range services {
		reversed[len(services)-1-i] = service
	}
	return reversed
}

func printSplash(buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "qdm12",
		Repository: "ipa-dnsrecord",
		Emails:     []string{"quentin.mcgaw@gmail.com"},
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
		// Sponsor information
		PaypalUser:    "qmcgaw",
		GithubSponsor: "qdm12",
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Println(line)
	}
}

func readConfig(reader *reader.Reader, logger log.LoggerInterface) (
	config config.Config, err error) {
	err = config.Read(reader, logger)
	if err != nil {
		return config, fmt.Errorf("reading settings: %w", err)
	}
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(config.Logger.ToOptions()...)
	logger.Info(config.String())

	return config, nil
}
