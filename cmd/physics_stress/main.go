// Stress test for the ground-plane physics step at growing body counts.
package main

import (
	"fmt"
	"math/rand"
	"orbitdemo/internal/components"
	"orbitdemo/internal/engine"
	"orbitdemo/internal/physics"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"
	"github.com/spf13/cobra"
)

var (
	flagFrames int
	flagSeed   int64
	flagCounts []int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "physics_stress",
	Short: "Time the physics step at growing body counts",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if flagFrames <= 0 {
			return fmt.Errorf("--frames must be positive, got %d", flagFrames)
		}
		fmt.Printf("%6s  %10s  %10s  %8s\n", "bodies", "per frame", "total", "escaped")
		for _, count := range flagCounts {
			runCount(count, flagFrames, flagSeed)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().IntVar(&flagFrames, "frames", 240, "Frames to simulate per count")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 42, "RNG seed")
	rootCmd.Flags().IntSliceVar(&flagCounts, "counts", []int{10, 100, 500, 1000, 2000, 5000}, "Body counts to test")
}

func runCount(count, frames int, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	w := ecs.NewWorld()

	// Spawn area scales with count to keep density reasonable
	ground := 20.0 + float64(count)/25.0
	half := float32(ground/2) - 1

	pw := physics.NewPhysicsWorld(physics.Config{
		Timestep:    physics.DefaultTimestep,
		MaxSubsteps: physics.DefaultMaxSubsteps,
		GroundSize:  ground,
	}, nil)

	bodies := ecs.NewMap3[engine.Transform, components.Rigidbody, components.Collider](&w)
	for i := 0; i < count; i++ {
		tr := engine.NewTransform(mgl32.Vec3{rng.Float32()*2*half - half, 0, rng.Float32()*2*half - half})
		col := components.NewCircleCollider(0.2 + rng.Float32()*0.3)

		var rb components.Rigidbody
		if i%10 == 0 {
			rb = components.NewStaticBody()
		} else {
			rb = components.NewRigidbody()
			rb.Velocity = mgl32.Vec3{rng.Float32()*4 - 2, 0, rng.Float32()*4 - 2}
		}
		bodies.NewEntity(&tr, &rb, &col)
	}

	pw.Initialize(&w)
	defer pw.Finalize(&w)

	start := time.Now()
	for i := 0; i < frames; i++ {
		engine.SetResource(&w, &engine.Time{Delta: 1.0 / 60.0, Frame: uint64(i)})
		pw.Update(&w)
	}
	total := time.Since(start)

	escaped := 0
	filter := ecs.NewFilter1[engine.Transform](&w)
	query := filter.Query()
	for query.Next() {
		p := query.Get().Position
		if p.X() < -half-1 || p.X() > half+1 || p.Z() < -half-1 || p.Z() > half+1 {
			escaped++
		}
	}

	fmt.Printf("%6d  %10s  %10s  %8d\n", count, total/time.Duration(frames), total.Round(time.Millisecond), escaped)
}
