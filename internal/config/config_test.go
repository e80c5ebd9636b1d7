package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FIGMA_API_TOKEN", "fig-token")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("ARTIFACT_S3_ENDPOINT", "")

	cfg := Load()

	require.Equal(t, "fig-token", cfg.FigmaToken)
	require.Empty(t, cfg.GeminiAPIKey)
	require.Equal(t, DefaultSummaryPath, cfg.SummaryPath)
	require.Equal(t, DefaultComponentsPath, cfg.ComponentsPath)
	require.Equal(t, DefaultRoadmapPath, cfg.RoadmapPath)
	require.Equal(t, DefaultScreenshotsDir, cfg.ScreenshotsDir)
	require.Equal(t, DefaultVisionModel, cfg.VisionModel)
	require.Equal(t, DefaultSynthesisModel, cfg.SynthesisModel)
	require.False(t, cfg.ArtifactEnabled)

	store, err := cfg.ArtifactStore()
	require.NoError(t, err)
	require.Nil(t, store)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FIGMA_API_TOKEN", " fig-token ")
	t.Setenv("ANALYSIS_SUMMARY_PATH", "out/summary.txt")
	t.Setenv("SCREENSHOTS_DIR", "shots")
	t.Setenv("GEMINI_VISION_MODEL", "gemini-x")

	cfg := Load()

	require.Equal(t, "fig-token", cfg.FigmaToken)
	require.Equal(t, "out/summary.txt", cfg.SummaryPath)
	require.Equal(t, "shots", cfg.ScreenshotsDir)
	require.Equal(t, "gemini-x", cfg.VisionModel)
	require.Equal(t, DefaultSynthesisModel, cfg.SynthesisModel)
}

func TestLoadArtifactBlock(t *testing.T) {
	t.Setenv("ARTIFACT_S3_ENDPOINT", "minio.local:9000")
	t.Setenv("ARTIFACT_S3_ACCESS_KEY", "ak")
	t.Setenv("ARTIFACT_S3_SECRET_KEY", "sk")
	t.Setenv("ARTIFACT_S3_USE_SSL", "false")

	cfg := Load()

	require.True(t, cfg.ArtifactEnabled)
	require.Equal(t, "minio.local:9000", cfg.Artifact.Endpoint)
	require.Equal(t, "us-east-1", cfg.Artifact.Region)
	require.Equal(t, "figma-info-gen-artifacts", cfg.Artifact.Bucket)
	require.False(t, cfg.Artifact.UseSSL)

	store, err := cfg.ArtifactStore()
	require.NoError(t, err)
	require.NotNil(t, store)
}
