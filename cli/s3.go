package cli

import (
	"fmt"

	"github.com/loadgen/loaded/cos"
	"github.com/loadgen/loaded/engine"
	"github.com/loadgen/loaded/stream"
	"github.com/loadgen/loaded/worker"

	"github.com/spf13/cobra"
)

func newS3Command(run *runFlags) *cobra.Command {
	var (
		bucket          string
		objectSize      int
		objPrefix       string
		trafficPattern  string
		folderDepth     int
		numObjsPerDir   int
		folderBranches  int
		checksumAlgoStr string
	)

	cmd := &cobra.Command{
		Use:   "s3",
		Short: "Generate S3-style PUT/GET traffic against an object store",
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, ok := engine.ParseTrafficPattern(trafficPattern)
			if !ok {
				return fmt.Errorf("invalid traffic pattern %q, expected put, get or both", trafficPattern)
			}

			var checksumAlgo stream.ChecksumAlgo
			if checksumAlgoStr != "" {
				algo, err := stream.ParseChecksumAlgo(checksumAlgoStr)
				if err != nil {
					return err
				}
				checksumAlgo = algo
			}

			desc := worker.EngineDescriptor{
				IsS3:                  true,
				S3Bucket:              bucket,
				S3ObjPrefix:           objPrefix,
				S3PrefixFolderDepth:   folderDepth,
				S3NumObjsPerPrefix:    numObjsPerDir,
				S3NumBranchesPerDepth: folderBranches,
				S3ObjectSize:          objectSize,
				S3ChecksumAlgo:        checksumAlgo,
				S3TrafficPattern:      pattern,
			}
			return runAndReport(run, desc)
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "bucket to PUT/GET objects against")
	cmd.Flags().IntVar(&objectSize, "object-size", 1024*1024, "size in bytes of each object written")
	cmd.Flags().StringVar(&objPrefix, "obj-prefix", cos.NewUUID(), "prefix prepended to every object key this run creates")
	cmd.Flags().StringVar(&trafficPattern, "traffic-pattern", "put", "traffic pattern to generate: put, get, or both")
	cmd.Flags().IntVar(&folderDepth, "folder-depth", 0, "number of nested prefix folders to spread objects across")
	cmd.Flags().IntVar(&numObjsPerDir, "num-objs-per-prefix-folder", 10000, "number of objects per leaf prefix folder before rolling over to the next")
	cmd.Flags().IntVar(&folderBranches, "folder-branches", 10, "number of child folders per prefix folder level")
	cmd.Flags().StringVar(&checksumAlgoStr, "checksum-algorithm", "", "optional checksum to attach to PUTs: md5, crc32, crc32c, sha1, or sha2")

	_ = cmd.MarkFlagRequired("bucket")

	return cmd
}
