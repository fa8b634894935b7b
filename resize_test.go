package imstr

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wbrown/imstr/imageutil"
)

// recordingResampler records every requested size and delegates to the box
// resampler.
type recordingResampler struct {
	calls [][2]int
}

func (r *recordingResampler) Resample(img *imageutil.GrayImage, width, height int) (*imageutil.GrayImage, error) {
	r.calls = append(r.calls, [2]int{width, height})
	return imageutil.BoxResampler{}.Resample(img, width, height)
}

func intPtr(v int) *int {
	return &v
}

func TestResolveSize(t *testing.T) {
	tests := []struct {
		name          string
		srcW, srcH    int
		width, height *int
		wantW, wantH  int
	}{
		{"neither", 200, 50, nil, nil, 200, 50},
		{"width drives", 200, 50, intPtr(100), nil, 100, 25},
		{"height drives", 200, 50, nil, intPtr(10), 40, 10},
		{"both stretch", 200, 50, intPtr(30), intPtr(30), 30, 30},
		{"width rounds to nearest", 3, 2, intPtr(2), nil, 2, 1},
		{"height rounds half away from zero", 3, 2, nil, intPtr(1), 2, 1},
		{"derived side can vanish", 1000, 1, intPtr(10), nil, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := ResolveSize(tt.srcW, tt.srcH, tt.width, tt.height)
			assert.Equal(t, tt.wantW, w, "width")
			assert.Equal(t, tt.wantH, h, "height")
		})
	}
}

func TestResolveSizePreservesAspectRatio(t *testing.T) {
	sizes := [][2]int{{200, 50}, {640, 480}, {17, 93}, {1920, 1080}, {3, 1000}}
	for _, src := range sizes {
		for _, width := range []int{1, 7, 64, 100, 333} {
			w, h := ResolveSize(src[0], src[1], intPtr(width), nil)
			require.Equal(t, width, w)
			exact := float64(width) * float64(src[1]) / float64(src[0])
			assert.LessOrEqual(t, math.Abs(float64(h)-exact), 1.0,
				"%dx%d at width %d gave height %d", src[0], src[1], width, h)
		}
	}
}

func TestScaleSize(t *testing.T) {
	w, h := ScaleSize(100, 25, 1)
	assert.Equal(t, [2]int{100, 25}, [2]int{w, h})

	w, h = ScaleSize(100, 25, 0.5)
	assert.Equal(t, [2]int{50, 12}, [2]int{w, h})

	w, h = ScaleSize(3, 3, 1.5)
	assert.Equal(t, [2]int{4, 4}, [2]int{w, h})
}

func TestResizeSkipsNoOpSteps(t *testing.T) {
	img := imageutil.CreateGradientImage(20, 10)
	cfg, err := NewConfig()
	require.NoError(t, err)

	r := &recordingResampler{}
	resized, err := Resize(img, cfg, r)
	require.NoError(t, err)
	assert.Empty(t, r.calls)
	assert.Same(t, img, resized)
}

func TestResizeWidthThenScale(t *testing.T) {
	img := imageutil.CreateGradientImage(200, 50)
	cfg, err := NewConfig(WithWidth(100), WithScale(0.5))
	require.NoError(t, err)

	r := &recordingResampler{}
	resized, err := Resize(img, cfg, r)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{100, 25}, {50, 12}}, r.calls)
	assert.Equal(t, 50, resized.Width())
	assert.Equal(t, 12, resized.Height())
}

func TestResizeBothDimensionsStretch(t *testing.T) {
	img := imageutil.CreateGradientImage(200, 50)
	cfg, err := NewConfig(WithWidth(10), WithHeight(40))
	require.NoError(t, err)

	resized, err := Resize(img, cfg, imageutil.BoxResampler{})
	require.NoError(t, err)
	assert.Equal(t, 10, resized.Width())
	assert.Equal(t, 40, resized.Height())
}

func TestResizeRejectsEmptyResult(t *testing.T) {
	img := imageutil.CreateGradientImage(10, 10)

	tests := []struct {
		name string
		opts []Option
	}{
		{"scale rounds to zero", []Option{WithScale(0.05)}},
		{"derived height rounds to zero", []Option{WithWidth(1), WithScale(0.5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewConfig(tt.opts...)
			require.NoError(t, err)

			r := &recordingResampler{}
			_, err = Resize(img, cfg, r)
			assert.True(t, errors.Is(err, ErrEmptyImage), "got %v", err)
			assert.Empty(t, r.calls, "nothing should be resampled")
		})
	}

	wide := imageutil.CreateGradientImage(1000, 2)
	cfg, err := NewConfig(WithWidth(10))
	require.NoError(t, err)
	_, err = Resize(wide, cfg, imageutil.BoxResampler{})
	assert.True(t, errors.Is(err, ErrEmptyImage))
}

func TestResizeRejectsOversizedResult(t *testing.T) {
	tests := []struct {
		name string
		src  *imageutil.GrayImage
		opts []Option
	}{
		{"derived height too tall", imageutil.CreateGradientImage(1, 1000), []Option{WithWidth(MaxSide)}},
		{"derived width too wide", imageutil.CreateGradientImage(1000, 2), []Option{WithHeight(100)}},
		{"huge scale", imageutil.CreateGradientImage(10, 10), []Option{WithScale(1e300)}},
		{"scale past limit", imageutil.CreateGradientImage(10, 10), []Option{WithWidth(MaxSide), WithScale(2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewConfig(tt.opts...)
			require.NoError(t, err)

			r := &recordingResampler{}
			_, err = Resize(tt.src, cfg, r)
			assert.True(t, errors.Is(err, ErrInvalidSize), "got %v", err)
			assert.Empty(t, r.calls, "nothing should be resampled")
		})
	}
}

func TestScaleSizeSaturates(t *testing.T) {
	w, h := ScaleSize(10, 10, 1e300)
	assert.Greater(t, w, MaxSide)
	assert.Greater(t, h, MaxSide)
}
