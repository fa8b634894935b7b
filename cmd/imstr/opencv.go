//go:build opencv

package main

import "github.com/wbrown/imstr/opencv"

func init() {
	backends["opencv"] = backend{decoder: opencv.Decoder{}, resampler: opencv.Resampler{}}
}
