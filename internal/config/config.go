package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Hasib303/figma-info-gen/internal/artifact"
)

// Default output locations. Fixed names, overridable via env.
const (
	DefaultSummaryPath    = "figma_analysis_summary.txt"
	DefaultComponentsPath = "figma_components_analysis.txt"
	DefaultRoadmapPath    = "roadmap.txt"
	DefaultScreenshotsDir = "figma_screenshots"

	DefaultVisionModel    = "gemini-2.5-flash"
	DefaultSynthesisModel = "gemini-2.5-pro"
)

// Config carries every recognized setting. Components receive it (or the
// relevant fields) at construction instead of reading the environment
// themselves.
type Config struct {
	FigmaToken   string // required before any Figma API call
	GeminiAPIKey string // required for the roadmap flow only

	VisionModel    string
	SynthesisModel string

	SummaryPath    string
	ComponentsPath string
	RoadmapPath    string
	ScreenshotsDir string

	Artifact        artifact.Config
	ArtifactEnabled bool
}

// Load reads .env (if present) and the process environment. Missing
// credentials are not an error here; each entry point checks the fields it
// needs before doing network work.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		FigmaToken:   strings.TrimSpace(os.Getenv("FIGMA_API_TOKEN")),
		GeminiAPIKey: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),

		VisionModel:    firstNonEmpty(strings.TrimSpace(os.Getenv("GEMINI_VISION_MODEL")), DefaultVisionModel),
		SynthesisModel: firstNonEmpty(strings.TrimSpace(os.Getenv("GEMINI_SYNTHESIS_MODEL")), DefaultSynthesisModel),

		SummaryPath:    firstNonEmpty(strings.TrimSpace(os.Getenv("ANALYSIS_SUMMARY_PATH")), DefaultSummaryPath),
		ComponentsPath: firstNonEmpty(strings.TrimSpace(os.Getenv("COMPONENTS_REPORT_PATH")), DefaultComponentsPath),
		RoadmapPath:    firstNonEmpty(strings.TrimSpace(os.Getenv("ROADMAP_PATH")), DefaultRoadmapPath),
		ScreenshotsDir: firstNonEmpty(strings.TrimSpace(os.Getenv("SCREENSHOTS_DIR")), DefaultScreenshotsDir),

		Artifact:        loadArtifactConfig(),
		ArtifactEnabled: strings.TrimSpace(os.Getenv("ARTIFACT_S3_ENDPOINT")) != "",
	}
}

// ArtifactStore builds the optional upload store, or returns nil when no
// endpoint is configured.
func (c *Config) ArtifactStore() (*artifact.Store, error) {
	if !c.ArtifactEnabled {
		return nil, nil
	}
	return artifact.New(c.Artifact)
}

func loadArtifactConfig() artifact.Config {
	return artifact.Config{
		Endpoint:  strings.TrimSpace(os.Getenv("ARTIFACT_S3_ENDPOINT")),
		Region:    firstNonEmpty(strings.TrimSpace(os.Getenv("ARTIFACT_S3_REGION")), "us-east-1"),
		AccessKey: strings.TrimSpace(os.Getenv("ARTIFACT_S3_ACCESS_KEY")),
		SecretKey: strings.TrimSpace(os.Getenv("ARTIFACT_S3_SECRET_KEY")),
		Bucket:    firstNonEmpty(strings.TrimSpace(os.Getenv("ARTIFACT_S3_BUCKET")), "figma-info-gen-artifacts"),
		UseSSL:    envBool("ARTIFACT_S3_USE_SSL", true),
	}
}

func envBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
