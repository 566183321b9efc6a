package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestFrame(t *testing.T) *Frame {
	t.Helper()
	f := New()
	require.NoError(t, f.AddColumn("driver_id", []interface{}{int64(1001), int64(1002), int64(1003)}))
	require.NoError(t, f.AddColumn("conv_rate", []interface{}{0.5, 0.75, 0.9}))
	require.NoError(t, f.AddColumn("name", []interface{}{"alice", "bob", "carol"}))
	return f
}

func TestNewFrame(t *testing.T) {
	f := New()
	assert.Equal(t, 0, f.Len())
	assert.Equal(t, 0, f.Width())
	assert.Empty(t, f.ColumnNames())
}

func TestAddColumn(t *testing.T) {
	f := createTestFrame(t)
	assert.Equal(t, 3, f.Len())
	assert.Equal(t, 3, f.Width())
	assert.Equal(t, []string{"driver_id", "conv_rate", "name"}, f.ColumnNames())

	err := f.AddColumn("short", []interface{}{1})
	var fe *FrameError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "AddColumn", fe.Op)
	assert.Equal(t, "short", fe.Column)
}

func TestAddColumnReplacesInPlace(t *testing.T) {
	f := createTestFrame(t)
	require.NoError(t, f.AddColumn("conv_rate", []interface{}{0.1, 0.2, 0.3}))

	assert.Equal(t, []string{"driver_id", "conv_rate", "name"}, f.ColumnNames())
	values, ok := f.Column("conv_rate")
	require.True(t, ok)
	assert.Equal(t, []interface{}{0.1, 0.2, 0.3}, values)
}

func TestRename(t *testing.T) {
	f := createTestFrame(t)
	require.NoError(t, f.Rename("conv_rate", "driver_hourly_stats__conv_rate"))

	assert.False(t, f.HasColumn("conv_rate"))
	values, ok := f.Column("driver_hourly_stats__conv_rate")
	require.True(t, ok)
	assert.Equal(t, []interface{}{0.5, 0.75, 0.9}, values)
	assert.Equal(t, []string{"driver_id", "driver_hourly_stats__conv_rate", "name"}, f.ColumnNames())
}

func TestRenameMissingColumn(t *testing.T) {
	f := createTestFrame(t)
	err := f.Rename("missing", "anything")
	var fe *FrameError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "missing", fe.Column)
	assert.ErrorIs(t, err, NewColumnNotFoundError("Rename", "missing"))
}

func TestRenameOverExisting(t *testing.T) {
	f := createTestFrame(t)
	require.NoError(t, f.Rename("conv_rate", "name"))

	assert.Equal(t, 2, f.Width())
	values, ok := f.Column("name")
	require.True(t, ok)
	assert.Equal(t, []interface{}{0.5, 0.75, 0.9}, values)
}

func TestDrop(t *testing.T) {
	f := createTestFrame(t)
	f.Drop("name", "not_there")

	assert.Equal(t, 2, f.Width())
	assert.False(t, f.HasColumn("name"))
	assert.Equal(t, []string{"driver_id", "conv_rate"}, f.ColumnNames())
}

func TestCopyIsIndependent(t *testing.T) {
	f := createTestFrame(t)
	cp := f.Copy()
	cp.Drop("name")
	require.NoError(t, cp.AddColumn("conv_rate", []interface{}{0.0, 0.0, 0.0}))

	assert.True(t, f.HasColumn("name"))
	values, _ := f.Column("conv_rate")
	assert.Equal(t, []interface{}{0.5, 0.75, 0.9}, values)
}

func TestFromRowsAndBack(t *testing.T) {
	rows := []map[string]interface{}{
		{"age": int64(3), "name": "john"},
		{"age": int64(5)},
	}
	f := FromRows(rows)

	assert.Equal(t, 2, f.Len())
	assert.Equal(t, []string{"age", "name"}, f.ColumnNames())

	back := f.Rows()
	require.Len(t, back, 2)
	assert.Equal(t, int64(3), back[0]["age"])
	assert.Equal(t, "john", back[0]["name"])
	assert.Nil(t, back[1]["name"])
}

func TestFromRowsEmpty(t *testing.T) {
	f := FromRows(nil)
	assert.Equal(t, 0, f.Len())
	assert.Empty(t, f.Rows())
}

func TestRow(t *testing.T) {
	f := createTestFrame(t)
	row := f.Row(1)
	assert.Equal(t, int64(1002), row["driver_id"])
	assert.Equal(t, 0.75, row["conv_rate"])
	assert.Equal(t, "bob", row["name"])
}
