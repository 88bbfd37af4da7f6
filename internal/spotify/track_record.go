package spotify

import (
	"time"

	"github.com/zmb3/spotify/v2"
)

// below this share of the track a play counts as skipped
const skipThresholdPercent = 90.0

// rewinding further than this on the same track starts a new play
const replayToleranceMs = 5000

type TrackRecord struct {
	ID            int       `json:"id"`
	TrackID       string    `json:"track_id"`
	TrackName     string    `json:"track_name"`
	Artists       []string  `json:"artists"`
	Album         string    `json:"album"`
	StartedAt     time.Time `json:"started_at"`
	DurationMs    int       `json:"duration_ms"`
	MsPlayed      int       `json:"ms_played"`
	PercentPlayed float64   `json:"percent_played"`
	Skipped       bool      `json:"skipped"`
}

// PlaybackSession is one uninterrupted play of a track as seen by the poller.
type PlaybackSession struct {
	TrackID        string
	TrackName      string
	Artists        []string
	Album          string
	DurationMs     int
	StartedAt      time.Time
	LastProgressMs int
	LastSeen       time.Time
}

func newSession(track *spotify.FullTrack, progressMs int, now time.Time) *PlaybackSession {
	artists := make([]string, 0, len(track.Artists))
	for _, a := range track.Artists {
		artists = append(artists, a.Name)
	}
	return &PlaybackSession{
		TrackID:        string(track.ID),
		TrackName:      track.Name,
		Artists:        artists,
		Album:          track.Album.Name,
		DurationMs:     int(track.Duration),
		StartedAt:      now.Add(-time.Duration(progressMs) * time.Millisecond),
		LastProgressMs: progressMs,
		LastSeen:       now,
	}
}

func (s *PlaybackSession) Record() TrackRecord {
	played := s.LastProgressMs
	if played > s.DurationMs {
		played = s.DurationMs
	}
	percent := 0.0
	if s.DurationMs > 0 {
		percent = float64(played) / float64(s.DurationMs) * 100
	}
	return TrackRecord{
		TrackID:       s.TrackID,
		TrackName:     s.TrackName,
		Artists:       s.Artists,
		Album:         s.Album,
		StartedAt:     s.StartedAt,
		DurationMs:    s.DurationMs,
		MsPlayed:      played,
		PercentPlayed: percent,
		Skipped:       percent < skipThresholdPercent,
	}
}

// PlaybackState folds successive currently-playing snapshots into sessions.
type PlaybackState struct {
	current *PlaybackSession
}

// Observe consumes one snapshot and returns the session it finished, if any.
// A nil snapshot or paused playback ends the current session.
func (p *PlaybackState) Observe(cp *spotify.CurrentlyPlaying, now time.Time) *PlaybackSession {
	if cp == nil || cp.Item == nil || !cp.Playing {
		return p.Flush()
	}

	progress := int(cp.Progress)
	if p.current != nil && p.current.TrackID == string(cp.Item.ID) {
		if progress+replayToleranceMs >= p.current.LastProgressMs {
			p.current.LastProgressMs = progress
			p.current.LastSeen = now
			return nil
		}
	}

	finished := p.current
	p.current = newSession(cp.Item, progress, now)
	return finished
}

func (p *PlaybackState) Flush() *PlaybackSession {
	finished := p.current
	p.current = nil
	return finished
}

func (p *PlaybackState) Current() *PlaybackSession {
	return p.current
}
