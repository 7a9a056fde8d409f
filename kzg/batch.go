/*
Copyright © 2020 ConsenSys

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package kzg

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"

	"github.com/consensys/zkzg/curve"
	"github.com/consensys/zkzg/logger"
)

// BatchVerifyEval checks a batch of openings against one digest, fanning
// out across runtime.NumCPU() workers. It returns the set of indices that
// failed verification; an empty set means the whole batch verified. The
// only error is context cancellation.
func BatchVerifyEval(ctx context.Context, cv curve.Curve, pk *VerifiableKey, digest curve.Point, openings []*Opening) (*bitset.BitSet, error) {
	log := logger.Logger().With().Str("curve", cv.Name()).Int("openings", len(openings)).Logger()
	start := time.Now()

	failed := bitset.New(uint(len(openings)))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range openings {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			op := openings[i]
			if op == nil || !VerifyEval(cv, pk, digest, op.K, op.PhiK, op.PhiHatK, op.Witness) {
				mu.Lock()
				failed.Set(uint(i))
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Debug().Uint("failed", failed.Count()).Dur("took", time.Since(start)).Msg("kzg batch verify done")
	return failed, nil
}
