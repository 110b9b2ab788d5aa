package media

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// cacheExpiration - сколько хранится результат определения длительности
	cacheExpiration = 10 * time.Minute
	cacheCleanup    = 30 * time.Minute
)

// Resolver определяет длительность по ссылке на файл или видео.
// Результаты кэшируются, чтобы повторный запуск не ходил в сеть.
type Resolver struct {
	extractor *Extractor
	youtube   *YouTube
	cache     *cache.Cache
}

// NewResolver создает Resolver с клиентами по умолчанию
func NewResolver() *Resolver {
	return &Resolver{
		extractor: NewExtractor(),
		youtube:   NewYouTube(),
		cache:     cache.New(cacheExpiration, cacheCleanup),
	}
}

// Resolve возвращает описание источника: URL или ID видео обрабатывается как
// видео YouTube, все остальное - как путь к mp3 файлу
func (r *Resolver) Resolve(ctx context.Context, ref string) (*Info, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if cached, found := r.cache.Get(ref); found {
		info := cached.(Info)
		return &info, nil
	}

	var (
		info *Info
		err  error
	)
	if IsVideoRef(ref) {
		info, err = r.youtube.VideoInfo(ctx, ref)
	} else {
		info, err = r.extractor.Probe(ref)
	}
	if err != nil {
		return nil, err
	}

	r.cache.Set(ref, *info, cache.DefaultExpiration)
	return info, nil
}

// IsURL проверяет, является ли источник ссылкой
func IsURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// IsVideoRef проверяет, указывает ли источник на видео: ссылка или ID из
// 11 символов. Существующий файл с таким именем имеет приоритет.
func IsVideoRef(ref string) bool {
	if IsURL(ref) {
		return true
	}
	if !bareVideoID.MatchString(ref) {
		return false
	}
	_, err := os.Stat(ref)
	return os.IsNotExist(err)
}
