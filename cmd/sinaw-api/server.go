package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sinaw-id/sinaw/internal/catalog"
	"github.com/sinaw-id/sinaw/internal/config"
	"github.com/sinaw-id/sinaw/internal/httpserver"
	"github.com/sinaw-id/sinaw/internal/mentor"
	"github.com/sinaw-id/sinaw/internal/metrics"
	"golang.org/x/sync/errgroup"
)

// runServer serves the session API until SIGINT or SIGTERM.
func runServer(cfg config.Config) error {
	cleanupLogger := config.RuntimeLogger("sinaw-api")
	defer cleanupLogger()

	cat, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	mentorCfg := cfg.Mentor()
	apiServer := httpserver.NewServer(httpserver.Config{
		Addr:          cfg.APIAddr,
		Catalog:       cat,
		Mentor:        mentor.NewService(mentorCfg),
		MentorTimeout: cfg.MentorTimeout,
		Recorder:      metrics.NewCollector(reg),
		Gatherer:      reg,
	})
	if err := apiServer.Start(); err != nil {
		return fmt.Errorf("failed to start API server: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\nShutting down gracefully... (press Ctrl+C again to force)")
		cancel()

		deadline := time.NewTimer(10 * time.Second)
		defer deadline.Stop()

		select {
		case <-sigCh:
			fmt.Println("\nForce shutdown.")
		case <-deadline.C:
			fmt.Println("Shutdown timed out, forcing exit.")
		}
		os.Exit(1)
	}()

	printStartupBanner(cfg, mentorCfg.APIKey != "")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(apiServer.Serve)
	g.Go(func() error {
		<-gctx.Done()
		if err := apiServer.Stop(); err != nil {
			log.Printf("server: shutdown: %v", err)
		}
		return nil
	})

	err = g.Wait()
	signal.Stop(sigCh)
	if err != nil {
		return fmt.Errorf("API server stopped: %w", err)
	}
	return nil
}

func printStartupBanner(cfg config.Config, live bool) {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	cyan := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	yellow := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	bold := lipgloss.NewStyle().Bold(true)

	check := green.Render("●")

	logo := green.Bold(true).Render(`
    ╔═╗╦╔╗╔╔═╗╦ ╦
    ╚═╗║║║║╠═╣║║║
    ╚═╝╩╝╚╝╩ ╩╚╩╝`)

	var lines []string
	lines = append(lines, "", logo, "    "+dim.Render("v"+version), "")
	lines = append(lines, dim.Render("    ─────────────────────────────────"), "")

	lines = append(lines, bold.Render("    Gateway"), "")
	lines = append(lines, fmt.Sprintf("    %s  Session API    %s", check, cyan.Render("http://"+cfg.APIAddr+"/api")))
	lines = append(lines, fmt.Sprintf("    %s  Metrics        %s", check, cyan.Render("http://"+cfg.APIAddr+"/metrics")))
	lines = append(lines, "")

	lines = append(lines, bold.Render("    Mentor"), "")
	if live {
		lines = append(lines, fmt.Sprintf("    %s  Backend        %s", check, cyan.Render(cfg.MentorModel)))
	} else {
		lines = append(lines, fmt.Sprintf("    %s  Backend        %s", yellow.Render("●"), yellow.Render("demo replies (no API key)")))
	}
	catalogSource := "built-in"
	if cfg.CatalogPath != "" {
		catalogSource = shortenPath(cfg.CatalogPath)
	}
	lines = append(lines, fmt.Sprintf("    %s  Catalog        %s", check, dim.Render(catalogSource)))
	lines = append(lines, "")

	if cfg.ConfigPath != "" {
		lines = append(lines, dim.Render("    config  "+shortenPath(cfg.ConfigPath)))
	}
	lines = append(lines, dim.Render("    logs    ~/.local/state/sinaw/sinaw-api.log"), "")

	fmt.Println(strings.Join(lines, "\n"))
}

// shortenPath replaces the home directory prefix with ~.
func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if rel, err := filepath.Rel(home, path); err == nil && !strings.HasPrefix(rel, "..") {
		return filepath.Join("~", rel)
	}
	return path
}
