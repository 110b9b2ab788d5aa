package media

import (
	"context"
	"fmt"
	"regexp"

	"github.com/kkdai/youtube/v2"
)

var (
	videoIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:youtube\.com/watch\?(?:.*&)?v=|youtu\.be/)([a-zA-Z0-9_-]{11})`),
		regexp.MustCompile(`(?:youtube\.com/embed/)([a-zA-Z0-9_-]{11})`),
		regexp.MustCompile(`(?:youtube\.com/v/)([a-zA-Z0-9_-]{11})`),
		regexp.MustCompile(`(?:youtube\.com/shorts/)([a-zA-Z0-9_-]{11})`),
	}
	bareVideoID = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
)

// videoClient - часть клиента YouTube, которая нужна для получения сведений о видео
type videoClient interface {
	GetVideoContext(ctx context.Context, id string) (*youtube.Video, error)
}

// YouTube получает длительность видео YouTube
type YouTube struct {
	client videoClient
}

// NewYouTube создает клиент YouTube
func NewYouTube() *YouTube {
	return &YouTube{client: &youtube.Client{}}
}

// VideoInfo возвращает название, автора и длительность видео
func (y *YouTube) VideoInfo(ctx context.Context, url string) (*Info, error) {
	videoID, err := ExtractVideoID(url)
	if err != nil {
		return nil, fmt.Errorf("ошибка извлечения ID видео: %w", err)
	}

	video, err := y.client.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения информации о видео: %w", err)
	}

	return &Info{
		Artist:   video.Author,
		Title:    video.Title,
		Duration: video.Duration,
		Source:   url,
	}, nil
}

// ExtractVideoID извлекает ID видео из различных форматов YouTube URL
func ExtractVideoID(url string) (string, error) {
	for _, re := range videoIDPatterns {
		matches := re.FindStringSubmatch(url)
		if len(matches) > 1 {
			return matches[1], nil
		}
	}

	// Если это просто ID видео (11 символов)
	if bareVideoID.MatchString(url) {
		return url, nil
	}

	return "", fmt.Errorf("не удалось извлечь ID видео из URL: %s", url)
}
