package producao

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imxdigital/producao-tracker/constants"
	"github.com/imxdigital/producao-tracker/internal/entity"
)

func TestCompletedSet(t *testing.T) {
	jobA := uuid.New() // zero items
	jobB := uuid.New() // one item, all entries concluido
	jobC := uuid.New() // one item without entries
	jobD := uuid.New() // two items, one has an open entry
	jobE := uuid.New() // two items, everything concluido

	itemB := &entity.Item{ID: uuid.New(), FolhaObraID: jobB}
	itemC := &entity.Item{ID: uuid.New(), FolhaObraID: jobC}
	itemD1 := &entity.Item{ID: uuid.New(), FolhaObraID: jobD}
	itemD2 := &entity.Item{ID: uuid.New(), FolhaObraID: jobD}
	itemE1 := &entity.Item{ID: uuid.New(), FolhaObraID: jobE}
	itemE2 := &entity.Item{ID: uuid.New(), FolhaObraID: jobE}

	items := []*entity.Item{itemB, itemC, itemD1, itemD2, itemE1, itemE2}
	entries := []*entity.LogisticsEntry{
		{ID: uuid.New(), ItemID: itemB.ID, Concluido: true},
		{ID: uuid.New(), ItemID: itemB.ID, Concluido: true},
		{ID: uuid.New(), ItemID: itemD1.ID, Concluido: true},
		{ID: uuid.New(), ItemID: itemD2.ID, Concluido: false},
		{ID: uuid.New(), ItemID: itemE1.ID, Concluido: true},
		{ID: uuid.New(), ItemID: itemE2.ID, Concluido: true},
	}

	completed := CompletedSet([]uuid.UUID{jobA, jobB, jobC, jobD, jobE}, items, entries)

	assert.False(t, completed[jobA], "zero items means nothing has shipped")
	assert.True(t, completed[jobB])
	assert.False(t, completed[jobC], "an entry-less item keeps the job open")
	assert.False(t, completed[jobD], "one open entry keeps the job open")
	assert.True(t, completed[jobE])
}

func TestClassifierJobIDsSplitsTabs(t *testing.T) {
	done := makeJob("1001", "CAMP", false, testNow)
	open := makeJob("1002", "CAMP", false, testNow)
	held := makeJob("1003", "CAMP", true, testNow)
	jobs := &fakeJobsRepo{jobs: []*entity.Job{done, open, held}}
	items := &fakeItemsRepo{}
	logistica := &fakeLogisticaRepo{}
	addItem(items, logistica, done.ID, "cartaz", "CZ-1", true)
	addItem(items, logistica, open.ID, "cartaz", "CZ-2", false)
	addItem(items, logistica, held.ID, "cartaz", "CZ-3", true)

	c := NewClassifier(jobs, items, logistica, testLogger())

	completed, err := c.JobIDs(context.Background(), constants.TabConcluidos, nil)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{done.ID}, completed)

	inProgress, err := c.JobIDs(context.Background(), constants.TabEmCurso, nil)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{open.ID}, inProgress, "pendente jobs never enter classification")
}

func TestClassifierJobIDsHonorsSince(t *testing.T) {
	recent := makeJob("1101", "CAMP", false, testNow.Add(-time.Hour))
	stale := makeJob("1102", "CAMP", false, testNow.AddDate(-2, 0, 0))
	jobs := &fakeJobsRepo{jobs: []*entity.Job{recent, stale}}
	items := &fakeItemsRepo{}
	logistica := &fakeLogisticaRepo{}
	addItem(items, logistica, recent.ID, "mupi", "MP-1", false)
	addItem(items, logistica, stale.ID, "mupi", "MP-2", false)

	c := NewClassifier(jobs, items, logistica, testLogger())
	since := testNow.AddDate(0, -12, 0)

	ids, err := c.JobIDs(context.Background(), constants.TabEmCurso, &since)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{recent.ID}, ids)
}

func TestClassifierJobIDsPropagatesErrors(t *testing.T) {
	job := makeJob("1201", "CAMP", false, testNow)
	jobs := &fakeJobsRepo{jobs: []*entity.Job{job}}
	items := &fakeItemsRepo{}
	logistica := &fakeLogisticaRepo{listErr: assert.AnError}
	addItem(items, &fakeLogisticaRepo{}, job.ID, "vinil", "VN-1")

	c := NewClassifier(jobs, items, logistica, testLogger())
	_, err := c.JobIDs(context.Background(), constants.TabEmCurso, nil)
	require.Error(t, err)
}

func TestClassifierJobIDsNoCandidates(t *testing.T) {
	c := NewClassifier(&fakeJobsRepo{}, &fakeItemsRepo{}, &fakeLogisticaRepo{}, testLogger())
	ids, err := c.JobIDs(context.Background(), constants.TabConcluidos, nil)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
