package processing

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abjp/driver-payroll/entity"
	"github.com/abjp/driver-payroll/infra/locker"
)

type fakeDirectory struct {
	ids []string
	err error
}

func (f fakeDirectory) ActiveDriverIDs() ([]string, error) {
	return f.ids, f.err
}

func newTestUsecase(ids ...string) *processingUsecase {
	return NewProcessingUsecase(nil, fakeDirectory{ids: ids}, locker.New(), DefaultParams()).(*processingUsecase)
}

func writeBatchFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestProcessBatchPartialFailure(t *testing.T) {
	dir := t.TempDir()
	good1 := writeBatchFile(t, dir, "a.csv",
		header+"D1;Maria;Centro;SP;100;Corridas concluidas;manha\n")
	good2 := writeBatchFile(t, dir, "b.csv",
		header+"D1;Maria;Centro;SP;20;Gorjeta;manha\n")
	bad := writeBatchFile(t, dir, "c.csv", "colunas;erradas\nx;y\n")

	u := newTestUsecase()
	result, err := u.ProcessBatch([]string{good1, good2, bad}, entity.BatchOptions{})
	require.NoError(t, err)

	require.Equal(t, 3, result.FilesAttempted)
	require.Equal(t, 2, result.FilesSucceeded)
	require.Equal(t, 1, result.FilesFailed)
	require.Contains(t, result.FileErrors, "c.csv")

	require.Equal(t, 1, result.TotalDrivers)
	require.Equal(t, "120.00", result.GrandTotal.StringFixed(2))
	require.Equal(t, "59.65", result.Consolidations[0].FinalAdvance.StringFixed(2))
}

func TestProcessBatchAllowlistFilter(t *testing.T) {
	dir := t.TempDir()
	file := writeBatchFile(t, dir, "a.csv",
		header+
			"D1;Maria;Centro;SP;100;Corridas concluidas;manha\n"+
			"D2;Bruno;Centro;SP;50;Corridas concluidas;manha\n")

	u := newTestUsecase("D1", "D2")
	result, err := u.ProcessBatch([]string{file}, entity.BatchOptions{DriverIDs: []string{"D2"}})
	require.NoError(t, err)

	require.Equal(t, 1, result.TotalDrivers)
	require.Equal(t, "D2", result.Consolidations[0].DriverID)
	require.Equal(t, 2, result.RegisteredDrivers)
}

func TestProcessBatchOnlyRegistered(t *testing.T) {
	dir := t.TempDir()
	file := writeBatchFile(t, dir, "a.csv",
		header+
			"D1;Maria;Centro;SP;100;Corridas concluidas;manha\n"+
			"D9;Desconhecido;Centro;SP;999;Corridas concluidas;manha\n")

	u := newTestUsecase("D1")
	result, err := u.ProcessBatch([]string{file}, entity.BatchOptions{OnlyRegistered: true})
	require.NoError(t, err)

	require.Equal(t, 1, result.TotalDrivers)
	require.Equal(t, "D1", result.Consolidations[0].DriverID)
}

func TestProcessBatchOnlyRegisteredEmptyRegistry(t *testing.T) {
	dir := t.TempDir()
	file := writeBatchFile(t, dir, "a.csv",
		header+"D1;Maria;Centro;SP;100;Corridas concluidas;manha\n")

	u := newTestUsecase()
	_, err := u.ProcessBatch([]string{file}, entity.BatchOptions{OnlyRegistered: true})
	require.ErrorIs(t, err, ErrNoRegisteredDrivers)
}

func TestProcessBatchEmptyAllowlistMeansNoFilter(t *testing.T) {
	dir := t.TempDir()
	file := writeBatchFile(t, dir, "a.csv",
		header+"D1;Maria;Centro;SP;100;Corridas concluidas;manha\n")

	u := newTestUsecase()
	result, err := u.ProcessBatch([]string{file}, entity.BatchOptions{DriverIDs: []string{}})
	require.NoError(t, err)
	require.Equal(t, 1, result.TotalDrivers)
}

func TestProcessBatchDirectoryFailure(t *testing.T) {
	dir := t.TempDir()
	file := writeBatchFile(t, dir, "a.csv",
		header+"D1;Maria;Centro;SP;100;Corridas concluidas;manha\n")

	u := NewProcessingUsecase(nil, fakeDirectory{err: errors.New("registry down")},
		locker.New(), DefaultParams()).(*processingUsecase)
	_, err := u.ProcessBatch([]string{file}, entity.BatchOptions{})
	require.EqualError(t, err, "registry down")
}

func TestRunBatchRejectsConcurrentRun(t *testing.T) {
	dir := t.TempDir()
	file := writeBatchFile(t, dir, "a.csv",
		header+"D1;Maria;Centro;SP;100;Corridas concluidas;manha\n")

	u := newTestUsecase()
	require.True(t, u.locker.TryAcquire(batchLockKey([]string{file})))

	_, _, err := u.RunBatch("payroll", []string{file}, entity.BatchOptions{}, "tester")
	require.ErrorIs(t, err, ErrBatchInFlight)
}

func TestBatchLockKeyIsOrderInsensitive(t *testing.T) {
	require.Equal(t,
		batchLockKey([]string{"/tmp/a.csv", "/tmp/b.csv"}),
		batchLockKey([]string{"/tmp/b.csv", "/tmp/a.csv"}))
	require.NotEqual(t,
		batchLockKey([]string{"/tmp/a.csv"}),
		batchLockKey([]string{"/tmp/b.csv"}))
}
