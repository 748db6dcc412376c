package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(srv *httptest.Server) *Client {
	return NewClientWithHosts("test-key", 1000, srv.URL, srv.URL)
}

func TestResolveAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-Riot-Token"))
		assert.Equal(t, "/riot/account/v1/accounts/by-riot-id/Player/BR1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"puuid": "puuid-123"})
	}))
	defer srv.Close()

	puuid, err := newTestClient(srv).ResolveAccount(context.Background(), "Player#BR1")
	require.NoError(t, err)
	assert.Equal(t, "puuid-123", puuid)
}

func TestResolveAccount_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestClient(srv)

	_, err := c.ResolveAccount(context.Background(), "no-tag")
	assert.ErrorIs(t, err, ErrInvalidRiotID)

	_, err = c.ResolveAccount(context.Background(), "Ghost#BR1")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestLastMatchID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "420", r.URL.Query().Get("queue"))
		json.NewEncoder(w).Encode([]string{"BR1_200", "BR1_199"})
	}))
	defer srv.Close()

	id, err := newTestClient(srv).LastMatchID(context.Background(), "puuid-123")
	require.NoError(t, err)
	assert.Equal(t, "BR1_200", id)
}

func TestLastMatchID_EmptyHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]string{})
	}))
	defer srv.Close()

	id, err := newTestClient(srv).LastMatchID(context.Background(), "puuid-123")
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestInActiveGame(t *testing.T) {
	inGame := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !inGame {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"gameMode": "CLASSIC"})
	}))
	defer srv.Close()

	c := newTestClient(srv)

	got, err := c.InActiveGame(context.Background(), "puuid-123")
	require.NoError(t, err)
	assert.True(t, got)

	// 404 от Spectator значит "не в игре", а не ошибка
	inGame = false
	got, err = c.InActiveGame(context.Background(), "puuid-123")
	require.NoError(t, err)
	assert.False(t, got)
}

func matchPayload(id string, duration int, win bool, kills int) map[string]any {
	return map[string]any{
		"metadata": map[string]string{"matchId": id},
		"info": map[string]any{
			"gameDuration": duration,
			"participants": []map[string]any{
				{
					"puuid": "puuid-123", "teamId": 100, "teamPosition": "MIDDLE",
					"win": win, "kills": kills, "deaths": 4, "assists": 7,
					"totalDamageDealtToChampions": 21000, "totalMinionsKilled": 180,
					"neutralMinionsKilled": 20, "visionScore": 25,
				},
				{
					"puuid": "puuid-enemy", "teamId": 200, "teamPosition": "MIDDLE",
					"win": !win, "kills": 3, "deaths": 6, "assists": 4,
					"totalDamageDealtToChampions": 15000, "totalMinionsKilled": 150,
					"neutralMinionsKilled": 10, "visionScore": 18,
				},
			},
		},
	}
}

func TestFetchPlayerStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "/summoners/by-puuid/"):
			json.NewEncoder(w).Encode(map[string]int{"summonerLevel": 250})
		case strings.HasSuffix(r.URL.Path, "/ids"):
			json.NewEncoder(w).Encode([]string{"BR1_3", "BR1_2", "BR1_1"})
		case strings.Contains(r.URL.Path, "/matches/BR1_3"):
			json.NewEncoder(w).Encode(matchPayload("BR1_3", 1800, true, 10))
		case strings.Contains(r.URL.Path, "/matches/BR1_2"):
			// Ремейк, в статистику не попадает
			json.NewEncoder(w).Encode(matchPayload("BR1_2", 300, true, 2))
		case strings.Contains(r.URL.Path, "/matches/BR1_1"):
			json.NewEncoder(w).Encode(matchPayload("BR1_1", 2400, false, 4))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	stats, err := newTestClient(srv).FetchPlayerStats(context.Background(), "puuid-123")
	require.NoError(t, err)

	assert.Equal(t, 250, stats.SummonerLevel)

	// Две валидные партии: победа с 10 убийств и поражение с 4
	assert.InDelta(t, 0.5, stats.WinRate, 1e-9)
	assert.InDelta(t, 7.0, stats.AvgKills, 1e-9)
	require.Equal(t, []bool{true, false}, stats.RecentWins)
	assert.Equal(t, []float64{10, 4}, stats.RecentKills)
	assert.Equal(t, []string{"MIDDLE", "MIDDLE"}, stats.PlayerRoles)

	// Игрок был лучшим по очкам и урону в обеих партиях
	assert.InDelta(t, 1.0, stats.MVPTeamFrequency, 1e-9)
	assert.InDelta(t, 1.0, stats.TopDamageFrequency, 1e-9)
	assert.InDelta(t, 1.0, stats.TopFarmFrequency, 1e-9)
}

func TestFetchPlayerStats_NoValidMatches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "/summoners/by-puuid/"):
			json.NewEncoder(w).Encode(map[string]int{"summonerLevel": 250})
		case strings.HasSuffix(r.URL.Path, "/ids"):
			json.NewEncoder(w).Encode([]string{"BR1_1"})
		default:
			json.NewEncoder(w).Encode(matchPayload("BR1_1", 300, true, 2))
		}
	}))
	defer srv.Close()

	_, err := newTestClient(srv).FetchPlayerStats(context.Background(), "puuid-123")
	assert.ErrorIs(t, err, ErrNoRankedHistory)
}

func TestMatchDetails_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).MatchDetails(context.Background(), "BR1_1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), fmt.Sprint(http.StatusServiceUnavailable))
}
