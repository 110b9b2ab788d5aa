package media

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kkdai/youtube/v2"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockVideoClient struct {
	requestedID string
	calls       int
	video       *youtube.Video
	err         error
}

func (m *mockVideoClient) GetVideoContext(_ context.Context, id string) (*youtube.Video, error) {
	m.requestedID = id
	m.calls++
	return m.video, m.err
}

func newTestResolver(client videoClient) *Resolver {
	return &Resolver{
		extractor: NewExtractor(),
		youtube:   &YouTube{client: client},
		cache:     cache.New(time.Minute, time.Minute),
	}
}

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		url     string
		want    string
		wantErr bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"https://youtu.be/dQw4w9WgXcQ?t=42", "dQw4w9WgXcQ", false},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"https://www.youtube.com/v/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"not-a-video-id", "", true},
		{"https://example.com/video", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, err := ExtractVideoID(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVideoInfo(t *testing.T) {
	client := &mockVideoClient{
		video: &youtube.Video{
			Title:    "Lo-fi beats to study to",
			Author:   "Lofi Girl",
			Duration: time.Hour + 2*time.Minute + 3*time.Second,
		},
	}
	yt := &YouTube{client: client}

	info, err := yt.VideoInfo(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)

	assert.Equal(t, "dQw4w9WgXcQ", client.requestedID)
	assert.Equal(t, "Lofi Girl", info.Artist)
	assert.Equal(t, "Lo-fi beats to study to", info.Title)
	assert.Equal(t, 3723, info.Seconds())
	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", info.Source)
}

func TestVideoInfoErrors(t *testing.T) {
	yt := &YouTube{client: &mockVideoClient{err: errors.New("This video is unavailable")}}

	_, err := yt.VideoInfo(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	assert.ErrorContains(t, err, "ошибка получения информации о видео")

	_, err = yt.VideoInfo(context.Background(), "not a video")
	assert.ErrorContains(t, err, "ошибка извлечения ID видео")
}

func TestResolverDispatchesURL(t *testing.T) {
	client := &mockVideoClient{video: &youtube.Video{Title: "Clip", Duration: 90 * time.Second}}
	r := newTestResolver(client)

	info, err := r.Resolve(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, 90, info.Seconds())
	assert.Equal(t, "Clip", info.Name())
}

func TestResolverCachesResult(t *testing.T) {
	client := &mockVideoClient{video: &youtube.Video{Title: "Clip", Duration: 90 * time.Second}}
	r := newTestResolver(client)
	url := "https://youtu.be/dQw4w9WgXcQ"

	for i := 0; i < 3; i++ {
		info, err := r.Resolve(context.Background(), url)
		require.NoError(t, err)
		assert.Equal(t, 90, info.Seconds())
	}
	assert.Equal(t, 1, client.calls)
}

func TestResolverDoesNotCacheErrors(t *testing.T) {
	client := &mockVideoClient{err: errors.New("unavailable")}
	r := newTestResolver(client)
	url := "https://youtu.be/dQw4w9WgXcQ"

	_, err := r.Resolve(context.Background(), url)
	require.Error(t, err)

	client.err = nil
	client.video = &youtube.Video{Title: "Clip", Duration: time.Minute}
	info, err := r.Resolve(context.Background(), url)
	require.NoError(t, err)
	assert.Equal(t, 60, info.Seconds())
	assert.Equal(t, 2, client.calls)
}

func TestResolverDispatchesBareVideoID(t *testing.T) {
	client := &mockVideoClient{video: &youtube.Video{Title: "Clip", Duration: 90 * time.Second}}
	r := newTestResolver(client)

	info, err := r.Resolve(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, 90, info.Seconds())
	assert.Equal(t, 1, client.calls)
	assert.Equal(t, "dQw4w9WgXcQ", client.requestedID)
}

func TestIsVideoRefPrefersExistingFile(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "lofi_beats1"), []byte("x"), 0o644))

	assert.True(t, IsVideoRef("dQw4w9WgXcQ"))
	assert.True(t, IsVideoRef("https://youtu.be/dQw4w9WgXcQ"))
	assert.False(t, IsVideoRef("lofi_beats1"))
	assert.False(t, IsVideoRef("song.mp3"))
}
