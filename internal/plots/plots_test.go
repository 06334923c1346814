// internal/plots/plots_test.go
package plots

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwiater/distilreport/internal/results"
	"github.com/mwiater/distilreport/internal/summary"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func sample() []results.Record {
	mk := func(teacher, method, metric, split string, v float64) results.Record {
		return results.Record{
			Dataset: "ETTh1", Horizon: "96", Split: split,
			TeacherModel: teacher, StudentModelArch: "PatchTST",
			TrainingMethod: method, Metric: metric, Value: v,
		}
	}
	return []results.Record{
		mk("DLinear", results.MethodTeacher, "mae", "test", 0.41),
		mk("DLinear", results.MethodTaskOnly, "mae", "test", 0.45),
		mk("DLinear", results.MethodRDT, "mae", "test", 0.40),
		mk("DLinear", results.MethodRDT, "mae", "val", 0.10),
		mk("DLinear", results.MethodRDT, "mse", "test", 0.30),
		mk("", results.MethodDirect, "mae", "test", 0.50),
	}
}

func pairKey(metric string) summary.Key {
	return summary.Key{Dataset: "ETTh1", Horizon: "96", TeacherModel: "DLinear", StudentModelArch: "PatchTST", Metric: metric}
}

func TestSelect(t *testing.T) {
	t.Parallel()

	got := Select(sample(), pairKey("mae"))
	assert.Len(t, got, 3)
	for _, rec := range got {
		assert.Equal(t, results.TestSplit, rec.Split)
		assert.Equal(t, "mae", rec.Metric)
	}
}

func TestBarsFollowMethodOrder(t *testing.T) {
	t.Parallel()

	bars := Bars(Select(sample(), pairKey("mae")), []string{results.MethodRDT, results.MethodTeacher, results.MethodFollower})
	require.Len(t, bars, 2)
	assert.Equal(t, results.MethodRDT, bars[0].Method)
	assert.Equal(t, results.MethodTeacher, bars[1].Method)
	assert.InDelta(t, 0.40, bars[0].Value, 1e-9)
}

func TestRenderProducesPNG(t *testing.T) {
	t.Parallel()

	key := pairKey("mae")
	png, err := Render(Select(sample(), key), key, results.DefaultMethodOrder)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic), "output is not a PNG")
}

func TestRenderEqualValues(t *testing.T) {
	t.Parallel()

	key := pairKey("mse")
	png, err := Render(Select(sample(), key), key, results.DefaultMethodOrder)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestRenderEmptyGroup(t *testing.T) {
	t.Parallel()

	_, err := Render(nil, pairKey("mae"), results.DefaultMethodOrder)
	assert.ErrorIs(t, err, ErrEmptyGroup)

	key := pairKey("mae")
	_, err = Render(Select(sample(), key), key, []string{results.MethodFollower})
	assert.ErrorIs(t, err, ErrEmptyGroup)
}

func TestFileName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ETTh1_H96_T_DLinear_S_PatchTST_mae.png", FileName(pairKey("mae")))

	key := summary.Key{Dataset: "weather/v2", Horizon: "96", StudentModelArch: "Patch TST", Metric: "mse"}
	assert.Equal(t, "weather_v2_H96_T_None_S_Patch_TST_mse.png", FileName(key))
}

func TestURLPath(t *testing.T) {
	t.Parallel()

	key := summary.Key{Dataset: "ETTh1", Horizon: "96", StudentModelArch: "PatchTST", Metric: "mae"}
	assert.Equal(t, "/plots/ETTh1/96/None/PatchTST/mae", URLPath(key))
}

func TestTitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Comparison on ETTh1 (H=96) / Teacher: DLinear, Student Arch: PatchTST - Metric: MAE", Title(pairKey("mae")))
	noTeacher := pairKey("mse")
	noTeacher.TeacherModel = ""
	assert.Contains(t, Title(noTeacher), "No Explicit Teacher")
}

func TestRendererWriteAll(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "plots")
	written, err := Renderer{OutputDir: dir, MethodOrder: results.DefaultMethodOrder}.WriteAll(sample())
	require.NoError(t, err)
	require.Len(t, written, 3)

	data, err := os.ReadFile(filepath.Join(dir, "ETTh1_H96_T_DLinear_S_PatchTST_mae.png"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))
	_, err = os.Stat(filepath.Join(dir, "ETTh1_H96_T_None_S_PatchTST_mae.png"))
	assert.NoError(t, err)
}

func TestRendererRequiresOutputDir(t *testing.T) {
	t.Parallel()

	_, err := Renderer{MethodOrder: results.DefaultMethodOrder}.WriteAll(sample())
	assert.Error(t, err)
}
