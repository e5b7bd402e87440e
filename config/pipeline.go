package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type PipelineConfig struct {
	WorkDir          string
	OutputDir        string
	CallTimeout      time.Duration
	EstimatedSeconds int
	WorkerPoolSize   int
}

func GetPipelineConfig() (*PipelineConfig, error) {
	workDir := os.Getenv("PIPELINE_WORK_DIR")
	if workDir == "" {
		workDir = "./workdir"
	}
	outputDir := os.Getenv("PIPELINE_OUTPUT_DIR")
	if outputDir == "" {
		outputDir = "./generated_videos"
	}
	callTimeout := 90 * time.Second
	if raw := os.Getenv("PIPELINE_CALL_TIMEOUT_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse PIPELINE_CALL_TIMEOUT_SECONDS: %w", err)
		}
		callTimeout = time.Duration(seconds) * time.Second
	}
	estimatedSeconds := 120
	if raw := os.Getenv("PIPELINE_ESTIMATED_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse PIPELINE_ESTIMATED_SECONDS: %w", err)
		}
		estimatedSeconds = seconds
	}
	poolSize := 120
	if raw := os.Getenv("WORKER_POOL_SIZE"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse WORKER_POOL_SIZE: %w", err)
		}
		poolSize = size
	}

	return &PipelineConfig{
		WorkDir:          workDir,
		OutputDir:        outputDir,
		CallTimeout:      callTimeout,
		EstimatedSeconds: estimatedSeconds,
		WorkerPoolSize:   poolSize,
	}, nil
}
