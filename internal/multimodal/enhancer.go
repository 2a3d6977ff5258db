// Package multimodal classifies files by media category and returns canned
// analysis results. The analyses are deterministic stand-ins; no file content
// is ever inspected.
package multimodal

import (
	"path/filepath"
	"strings"
)

// Modality is the media category inferred from a file's extension.
type Modality string

const (
	ModalityImage Modality = "image"
	ModalityAudio Modality = "audio"
	ModalityVideo Modality = "video"
)

// supportedFormats maps each modality to its recognized file extensions.
var supportedFormats = map[Modality][]string{
	ModalityImage: {"jpg", "jpeg", "png", "gif", "webp"},
	ModalityAudio: {"mp3", "wav", "ogg", "aac"},
	ModalityVideo: {"mp4", "webm", "avi", "mov"},
}

// ImageAnalysis is the fixed-shape result of AnalyzeImage.
type ImageAnalysis struct {
	Type            string   `json:"type"`
	Path            string   `json:"path"`
	DetectedObjects []string `json:"detected_objects"`
	TextRegions     int      `json:"text_regions"`
	DominantColors  []string `json:"dominant_colors"`
}

// AudioFeatures is the fixed-shape result of ExtractAudioFeatures.
type AudioFeatures struct {
	Type           string  `json:"type"`
	Path           string  `json:"path"`
	Duration       float64 `json:"duration"`
	SamplingRate   int     `json:"sampling_rate"`
	DetectedSpeech bool    `json:"detected_speech"`
	Language       string  `json:"language"`
}

// Enhancer provides modality detection and simulated media analysis.
type Enhancer struct{}

func NewEnhancer() *Enhancer {
	return &Enhancer{}
}

// DetectModality infers the media category from the file extension,
// case-insensitively. The second return is false for unknown extensions.
func (e *Enhancer) DetectModality(path string) (Modality, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	for modality, formats := range supportedFormats {
		for _, f := range formats {
			if ext == f {
				return modality, true
			}
		}
	}
	return "", false
}

// AnalyzeImage returns a simulated image analysis.
func (e *Enhancer) AnalyzeImage(path string) ImageAnalysis {
	return ImageAnalysis{
		Type:            string(ModalityImage),
		Path:            path,
		DetectedObjects: []string{"screenshot", "code", "documentation"},
		TextRegions:     3,
		DominantColors:  []string{"#ffffff", "#282c34"},
	}
}

// ExtractAudioFeatures returns simulated audio features.
func (e *Enhancer) ExtractAudioFeatures(path string) AudioFeatures {
	return AudioFeatures{
		Type:           string(ModalityAudio),
		Path:           path,
		Duration:       45.6,
		SamplingRate:   44100,
		DetectedSpeech: true,
		Language:       "zh-CN",
	}
}
