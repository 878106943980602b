package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/okunev/parsum"
)

func main() {
	nums := make([]int64, 5_000_000)
	for i := range nums {
		nums[i] = rand.Int64N(1000) - 500
	}

	ctx := context.Background()
	now := time.Now()

	total, err := parsum.SumWithin(ctx, nums, 8, 2*time.Second)
	if err != nil {
		fmt.Println("sum failed:", err)
		return
	}

	fmt.Printf("sum of %d numbers over 8 workers = %d (%s)\n",
		len(nums), total, time.Since(now))

	// Same computation through a reusable pool.
	summer, err := parsum.NewSummer[int64](ctx, 8)
	if err != nil {
		fmt.Println("pool:", err)
		return
	}
	defer summer.Close()

	for i := 0; i < 3; i++ {
		pooled, err := summer.Sum(nums)
		if err != nil {
			fmt.Println("pooled sum failed:", err)
			return
		}
		fmt.Println("pooled run:", pooled)
	}
	fmt.Printf("pool stats: %+v\n", summer.Stats())
}
