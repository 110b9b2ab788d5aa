package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-timekeeper/internal/clock"
)

// probeTimeout ограничивает запрос информации о видео
const probeTimeout = 30 * time.Second

// createProbeCommand создает команду probe с привязкой к экземпляру приложения
func (app *Application) createProbeCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "probe [file or URL]",
		Short: "Show the title and length of an mp3 file or YouTube video",
		Long:  `Read mp3 tags and length from a local file, or fetch video details from YouTube.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
			defer cancel()
			return app.probe(probeCtx, args[0])
		},
	}
}

func (app *Application) probe(ctx context.Context, source string) error {
	info, err := app.resolver.Resolve(ctx, source)
	if err != nil {
		return fmt.Errorf("ошибка определения длительности: %w", err)
	}

	fmt.Printf("🎵 %s\n", info.Name())
	if info.Album != "" {
		fmt.Printf("   Альбом: %s\n", info.Album)
	}
	fmt.Printf("   Длительность: %s\n", clock.FormatDuration(info.Duration, app.Config.ClockLayout()))
	fmt.Printf("   Секунд: %d\n", info.Seconds())
	return nil
}
