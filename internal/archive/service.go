package archive

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/hazadus/go-timekeeper/internal/data"
	"github.com/hazadus/go-timekeeper/internal/logging"
)

// keyPrefix - каталог архивов истории в бакете
const keyPrefix = "history/"

// timestampLayout используется в именах архивов
const timestampLayout = "20060102T150405Z"

// Service управляет выгрузкой истории
type Service struct {
	uploader *Uploader
	log      *logging.Logger
}

// NewService создает новый сервис архивации
func NewService(uploader *Uploader, log *logging.Logger) *Service {
	if log == nil {
		log = logging.Discard()
	}
	return &Service{uploader: uploader, log: log}
}

// ArchiveKey возвращает ключ архива для заданного момента времени
func ArchiveKey(now time.Time) string {
	return keyPrefix + now.UTC().Format(timestampLayout) + ".yaml"
}

// Export выгружает историю и возвращает URL архива
func (s *Service) Export(ctx context.Context, history *data.History, now time.Time) (string, error) {
	payload, err := history.Marshal()
	if err != nil {
		return "", fmt.Errorf("ошибка сериализации истории: %w", err)
	}

	key := ArchiveKey(now)
	objectURL, err := s.uploader.UploadFile(ctx, bytes.NewReader(payload), key)
	if err != nil {
		return "", fmt.Errorf("ошибка выгрузки истории: %w", err)
	}

	s.log.Info("history archived", "key", key, "sessions", len(history.Sessions))
	return objectURL, nil
}

// Remove удаляет архив по его URL
func (s *Service) Remove(ctx context.Context, fileURL string) error {
	key, err := extractKeyFromURL(fileURL)
	if err != nil {
		return err
	}
	if err := s.uploader.DeleteFile(ctx, key); err != nil {
		return err
	}

	s.log.Info("archive removed", "key", key)
	return nil
}

// extractKeyFromURL извлекает ключ объекта из URL вида endpoint/bucket/key
func extractKeyFromURL(fileURL string) (string, error) {
	parsedURL, err := url.Parse(fileURL)
	if err != nil {
		return "", fmt.Errorf("неверный URL: %w", err)
	}

	parts := strings.SplitN(strings.TrimPrefix(parsedURL.Path, "/"), "/", 2)
	if len(parts) < 2 || parts[1] == "" {
		return "", fmt.Errorf("неверный формат URL S3: %s", fileURL)
	}
	return parts[1], nil
}
