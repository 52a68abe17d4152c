package main

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/Juno-Labs-Team/sorts"
)

var count = 20

func main() {
	// sort a slice in place
	data := make([]int64, count)
	for i := range data {
		data[i] = rand.Int63n(100)
	}
	sorts.QuickSort3Way(data)
	fmt.Println("quick3way:", data)

	// merge sort returns a new slice and leaves its input alone
	words := []string{"pear", "apple", "plum", "fig", "apple"}
	fmt.Println("merge:    ", sorts.MergeSort(words))

	// sort a stream of records
	inputChan := make(chan int64)
	go func() {
		for i := 0; i < count; i++ {
			inputChan <- rand.Int63n(10)
		}
		close(inputChan)
	}()

	config := sorts.DefaultConfig()
	config.Algorithm = sorts.Merge
	sorter, outputChan, errChan := sorts.NewStreamOrdered(inputChan, config)
	sorter.Sort(context.Background())

	// drop duplicates from the sorted stream
	fmt.Print("stream:    ")
	for data := range sorts.UniqChan(outputChan) {
		fmt.Printf("%d ", data)
	}
	fmt.Println()
	if err := <-errChan; err != nil {
		fmt.Printf("err: %s", err.Error())
	}
}
