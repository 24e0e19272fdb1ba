package services

import (
	"testing"
	"time"

	"cricket-club-site/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTournament(t *testing.T, svc *TournamentService, name, start, end string) *models.Tournament {
	t.Helper()
	tt, err := svc.Create(TournamentInput{Name: name, StartDate: start, EndDate: end, Venue: "Home Ground"})
	require.NoError(t, err)
	return tt
}

func TestTournamentValidation(t *testing.T) {
	svc := NewTournamentService(newTestDB(t))
	var vErr *ValidationError

	_, err := svc.Create(TournamentInput{Name: "Cup", StartDate: "2025-06-10", EndDate: "2025-06-01", Venue: "Oval"})
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Message, "endDate")

	_, err = svc.Create(TournamentInput{Name: "Cup", StartDate: "10/06/2025", EndDate: "2025-06-11", Venue: "Oval"})
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Message, "startDate")

	_, err = svc.Create(TournamentInput{Name: "Cup", StartDate: "2025-06-10", EndDate: "2025-06-11", Venue: "Oval", Status: "cancelled"})
	assert.ErrorAs(t, err, &vErr)
}

func TestTournamentListByStartDate(t *testing.T) {
	svc := NewTournamentService(newTestDB(t))
	createTournament(t, svc, "Late", "2025-08-01", "2025-08-03")
	createTournament(t, svc, "Early", "2025-05-01", "2025-05-02")

	list, err := svc.List(ListOptions{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Early", list[0].Name)
	assert.Equal(t, models.TournamentUpcoming, list[0].Status)
}

func TestAdvanceStatuses(t *testing.T) {
	svc := NewTournamentService(newTestDB(t))
	running := createTournament(t, svc, "Running", "2025-06-10", "2025-06-20")
	finished := createTournament(t, svc, "Finished", "2025-05-01", "2025-06-01")
	future := createTournament(t, svc, "Future", "2025-07-01", "2025-07-05")

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	require.NoError(t, svc.AdvanceStatuses(now))

	for id, want := range map[uint]models.TournamentStatus{
		running.ID:  models.TournamentOngoing,
		finished.ID: models.TournamentCompleted,
		future.ID:   models.TournamentUpcoming,
	} {
		got, err := svc.Get(id)
		require.NoError(t, err)
		assert.Equal(t, want, got.Status, got.Name)
	}

	// Running again later completes the ongoing one and never rewinds.
	require.NoError(t, svc.AdvanceStatuses(now.AddDate(0, 0, 10)))
	got, err := svc.Get(running.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TournamentCompleted, got.Status)

	require.NoError(t, svc.AdvanceStatuses(now.AddDate(0, -6, 0)))
	got, err = svc.Get(running.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TournamentCompleted, got.Status)
}
