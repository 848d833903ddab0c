package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/theflywheel/elastichash"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	tbl := elastichash.New[string, int](1024, elastichash.WithLogger[string](logger))
	fmt.Printf("Table created with partition %v\n", tbl.Partition())

	var keys []string
	for i := 0; ; i++ {
		key := uuid.NewString()
		err := tbl.Insert(key, i)
		if errors.Is(err, elastichash.ErrTableFull) {
			fmt.Printf("Table full after %d inserts\n", i)
			break
		}
		if err != nil {
			logger.Fatal("failed to insert key", zap.String("key", key), zap.Error(err))
		}
		keys = append(keys, key)
	}

	// Duplicates are rejected and keep the original value
	if err := tbl.Insert(keys[0], -1); errors.Is(err, elastichash.ErrKeyAlreadyInserted) {
		v, _ := tbl.Get(keys[0])
		fmt.Printf("Duplicate rejected: %s => %d\n", keys[0], v)
	}

	for _, key := range keys[:5] {
		if v, found := tbl.Get(key); found {
			fmt.Printf("Key %s => Value %d\n", key, v)
		}
	}
	if _, found := tbl.Get("missing"); !found {
		fmt.Println("Key missing not found")
	}

	st := tbl.Stats()
	fmt.Printf("Stats: %d/%d buckets used, %d sub-arrays, load factor %.3f\n",
		st.Len, st.Size, st.SubArrays, st.LoadFactor)
}
