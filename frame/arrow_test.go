package frame

import (
	"testing"
	"time"

	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRecordAndBack(t *testing.T) {
	mem := memory.NewGoAllocator()

	f := New()
	require.NoError(t, f.AddColumn("id", []interface{}{int64(1), int64(2)}))
	require.NoError(t, f.AddColumn("score", []interface{}{0.5, nil}))
	require.NoError(t, f.AddColumn("city", []interface{}{"tokyo", "osaka"}))
	require.NoError(t, f.AddColumn("active", []interface{}{true, false}))
	require.NoError(t, f.AddColumn("embedding", []interface{}{[]float32{0.1, 0.2}, []float32{0.3}}))

	rec, err := f.ToRecord(mem)
	require.NoError(t, err)
	defer rec.Release()

	assert.Equal(t, int64(2), rec.NumRows())
	assert.Equal(t, int64(5), rec.NumCols())

	back, err := FromRecord(rec)
	require.NoError(t, err)

	assert.Equal(t, f.ColumnNames(), back.ColumnNames())
	ids, _ := back.Column("id")
	assert.Equal(t, []interface{}{int64(1), int64(2)}, ids)
	scores, _ := back.Column("score")
	assert.Equal(t, 0.5, scores[0])
	assert.Nil(t, scores[1])
	emb, _ := back.Column("embedding")
	assert.Equal(t, []float32{0.1, 0.2}, emb[0])
	assert.Equal(t, []float32{0.3}, emb[1])
}

func TestToRecordWidensInts(t *testing.T) {
	f := New()
	require.NoError(t, f.AddColumn("mixed", []interface{}{1, int32(2), int64(3)}))

	rec, err := f.ToRecord(nil)
	require.NoError(t, err)
	defer rec.Release()

	back, err := FromRecord(rec)
	require.NoError(t, err)
	values, _ := back.Column("mixed")
	assert.Equal(t, []interface{}{int64(1), int64(2), int64(3)}, values)
}

func TestToRecordTimestamp(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	f := New()
	require.NoError(t, f.AddColumn("event_time", []interface{}{ts}))

	rec, err := f.ToRecord(nil)
	require.NoError(t, err)
	defer rec.Release()

	back, err := FromRecord(rec)
	require.NoError(t, err)
	values, _ := back.Column("event_time")
	assert.Equal(t, ts, values[0])
}

func TestToRecordMixedTypesFails(t *testing.T) {
	f := New()
	require.NoError(t, f.AddColumn("bad", []interface{}{"str", 1.5}))

	_, err := f.ToRecord(nil)
	var fe *FrameError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "ToRecord", fe.Op)
}

func TestToRecordAllNilColumn(t *testing.T) {
	f := New()
	require.NoError(t, f.AddColumn("empty", []interface{}{nil, nil}))

	rec, err := f.ToRecord(nil)
	require.NoError(t, err)
	defer rec.Release()

	back, err := FromRecord(rec)
	require.NoError(t, err)
	values, _ := back.Column("empty")
	assert.Equal(t, []interface{}{nil, nil}, values)
}
