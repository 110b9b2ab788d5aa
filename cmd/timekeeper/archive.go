package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-timekeeper/internal/archive"
)

// archiveTimeout ограничивает выгрузку архива
const archiveTimeout = 2 * time.Minute

// createArchiveCommand создает команду archive с привязкой к экземпляру приложения
func (app *Application) createArchiveCommand(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Upload a history snapshot to S3",
		Long:  `Upload the session history as YAML to S3 storage, or delete a previously uploaded snapshot with --remove.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			archiveCtx, cancel := context.WithTimeout(ctx, archiveTimeout)
			defer cancel()

			remove, _ := cmd.Flags().GetString("remove")
			if remove != "" {
				return app.removeArchive(archiveCtx, remove)
			}
			return app.exportHistory(archiveCtx)
		},
	}
	cmd.Flags().String("remove", "", "URL of an archived snapshot to delete")
	return cmd
}

// archiveService создает сервис архивации из конфигурации
func (app *Application) archiveService() (*archive.Service, error) {
	if !app.Config.ArchiveConfigured() {
		return nil, errors.New("не заданы параметры S3: aws_bucket_name, aws_access_key, aws_secret_key")
	}

	uploader, err := archive.NewUploader(archive.Config{
		Region:     app.Config.AwsRegion,
		AccessKey:  app.Config.AwsAccessKey,
		SecretKey:  app.Config.AwsSecretKey,
		Endpoint:   app.Config.AwsEndpoint,
		BucketName: app.Config.AwsBucketName,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка создания S3 uploader: %w", err)
	}
	return archive.NewService(uploader, app.Log.With("component", "archive")), nil
}

func (app *Application) exportHistory(ctx context.Context) error {
	service, err := app.archiveService()
	if err != nil {
		return err
	}

	fmt.Printf("📤 Выгружаем историю в S3:\n")
	fmt.Printf("   Сеансов: %d\n", len(app.History.Sessions))
	fmt.Printf("   Бакет: %s\n", app.Config.AwsBucketName)

	url, err := service.Export(ctx, app.History, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("\n✅ История выгружена!\n")
	fmt.Printf("   URL: %s\n", url)
	return nil
}

func (app *Application) removeArchive(ctx context.Context, url string) error {
	service, err := app.archiveService()
	if err != nil {
		return err
	}
	if err := service.Remove(ctx, url); err != nil {
		return err
	}

	fmt.Printf("🗑️  Архив удален: %s\n", url)
	return nil
}
