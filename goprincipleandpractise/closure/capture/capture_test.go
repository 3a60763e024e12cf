package capture

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureModes_AddTwo(t *testing.T) {
	numrun := 0
	incr := 2
	stream, _ := FromReader(strings.NewReader("2"))

	tests := []struct {
		name string
		f    func(int) int
	}{
		{"Add2", Add2},
		{"ApplyApplication", ApplyApplication},
		{"Application.Apply", NewApplication().Apply},
		{"NoCapture", NoCapture()},
		{"Constant", Constant()},
		{"ByValue", ByValue(2)},
		{"Snapshot", Snapshot(&incr)},
		{"Counting", Counting(&numrun, 2)},
		{"FromReader", stream},
		{"Add 偏应用", func(n int) int { return Add(n, 2) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 3, tt.f(1))
		})
	}
}

func TestSnapshot_IgnoresLaterWrites(t *testing.T) {
	incr := 2
	f := Snapshot(&incr)
	incr = 50

	assert.Equal(t, 3, f(1))
	assert.Equal(t, 50, incr)
}

// 同一个变量地址分别交给 Snapshot 和 Counting：前者留值，后者留指针
func TestSnapshot_VersusCounting(t *testing.T) {
	v := 2
	snap := Snapshot(&v)
	count := Counting(&v, 2)

	assert.Equal(t, 3, count(1))
	assert.Equal(t, 3, v, "Counting 通过指针修改了 v")
	assert.Equal(t, 3, snap(1), "Snapshot 看不到 v 的变化")
}

func TestCounting_CountsEveryCall(t *testing.T) {
	for _, k := range []int{0, 1, 5} {
		numrun := 0
		f := Counting(&numrun, 2)
		for i := 0; i < k; i++ {
			assert.Equal(t, i+2, f(i))
		}
		assert.Equal(t, k, numrun, "after %d calls", k)
	}
}

func TestCounting_ObservesExternalWrites(t *testing.T) {
	numrun := 10
	f := Counting(&numrun, 2)
	f(1)
	assert.Equal(t, 11, numrun)

	numrun = 0
	f(1)
	assert.Equal(t, 1, numrun)
}

func TestFromReader(t *testing.T) {
	call, lastErr := FromReader(strings.NewReader("2 3"))

	assert.Equal(t, 3, call(1))
	require.NoError(t, lastErr())

	assert.Equal(t, 4, call(1))
	require.NoError(t, lastErr())

	// 流已读完：原样返回，错误可见
	assert.Equal(t, 1, call(1))
	err := lastErr()
	require.Error(t, err)
	assert.True(t, errors.Is(err, io.EOF), "got %v", err)
}

func TestFromReader_BadInput(t *testing.T) {
	call, lastErr := FromReader(strings.NewReader("two"))

	assert.Equal(t, 1, call(1))
	assert.Error(t, lastErr())
}

func TestApplication_MethodValueCopiesReceiver(t *testing.T) {
	app := NewApplication()
	f := app.Apply
	app.Incr = 40

	assert.Equal(t, 3, f(1))
	assert.Equal(t, 41, app.Apply(1))
}
