// Package main runs internal accumulator benchmarks.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"

	"github.com/consensys/zkzg/curve"
	"github.com/consensys/zkzg/kzg"
)

const benchCount = 10

var setSizes = []int{16} //64, 256, 1024

// /!\ internal use /!\
// running it with "trace" will output trace.out file
// else will output average query and verify times, in csv format
func main() {
	mode := "time"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	for _, size := range setSizes {
		cv, pk, com, outsider := generateAccumulator(size)
		runtime.GC()
		if mode != "trace" {
			var proof *kzg.Proof
			start := time.Now()
			for i := 0; i < benchCount; i++ {
				proof, _ = kzg.QueryZK(cv, pk, com, outsider)
			}
			query := time.Duration(int64(time.Since(start)) / benchCount)

			start = time.Now()
			for i := 0; i < benchCount; i++ {
				_ = kzg.VerifyZK(cv, pk, com.Digest, proof)
			}
			verify := time.Duration(int64(time.Since(start)) / benchCount)

			fmt.Printf("%s,%d,%d,%d\n", cv.Name(), size, query.Milliseconds(), verify.Milliseconds())
		} else {
			p := profile.Start(profile.TraceProfile, profile.ProfilePath("."))
			for i := 0; i < benchCount; i++ {
				_, _ = kzg.QueryZK(cv, pk, com, outsider)
			}
			p.Stop()
		}
	}
}

func generateAccumulator(size int) (curve.Curve, *kzg.VerifiableKey, *kzg.Commitment, curve.Scalar) {
	cv := curve.NewFastCurve()

	pk, err := kzg.Setup(cv, uint64(size))
	if err != nil {
		panic(err)
	}

	// odd values only, so any even value queries the non-member path
	set := make([]curve.Scalar, size)
	for i := range set {
		set[i] = cv.ScalarFromUint64(uint64(2*i + 1))
	}
	com, err := kzg.CommitZK(cv, pk, set)
	if err != nil {
		panic(err)
	}

	return cv, pk, com, cv.ScalarFromUint64(4)
}
