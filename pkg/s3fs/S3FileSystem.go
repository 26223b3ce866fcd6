// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package s3fs

import (
	"context"
	"errors"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/deptofdefense/icelist/pkg/fs"
)

type S3FileSystem struct {
	bucket             string
	prefix             string
	s3                 *s3.Client
	bucketCreationDate time.Time
	maxEntries         int
}

func (sfs *S3FileSystem) key(name string) string {
	if name == "/" {
		return sfs.prefix
	}
	if len(sfs.prefix) == 0 {
		return strings.TrimPrefix(name, "/")
	}
	return sfs.Join(sfs.prefix, name)
}

func (sfs *S3FileSystem) HeadObject(ctx context.Context, name string) (fs.FileInfo, error) {
	headObjectOutput, err := sfs.s3.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(sfs.bucket),
		Key:    aws.String(strings.TrimSuffix(sfs.key(name), "/")),
	})
	if err != nil {
		return nil, err
	}
	fi := NewS3FileInfo(
		name,
		aws.ToTime(headObjectOutput.LastModified),
		false,
		headObjectOutput.ContentLength,
	)
	return fi, nil
}

func (sfs *S3FileSystem) IsNotExist(err error) bool {
	var responseError *awshttp.ResponseError
	if errors.As(err, &responseError) {
		if responseError.HTTPStatusCode() == 404 {
			return true
		}
	}
	return false
}

func (sfs *S3FileSystem) IsPermission(err error) bool {
	var responseError *awshttp.ResponseError
	if errors.As(err, &responseError) {
		if responseError.HTTPStatusCode() == 403 {
			return true
		}
	}
	return false
}

func (sfs *S3FileSystem) Join(name ...string) string {
	return path.Join(name...)
}

func (sfs *S3FileSystem) ReadDir(ctx context.Context, name string) ([]fs.DirectoryEntry, error) {
	keyPrefix := sfs.key(name)
	if len(keyPrefix) > 0 && !strings.HasSuffix(keyPrefix, "/") {
		keyPrefix += "/"
	}
	directoryEntries := []fs.DirectoryEntry{}
	if sfs.maxEntries == 0 {
		return directoryEntries, nil
	}
	var marker *string
	// iterate through the bucket until the listing is no longer truncated
	for i := 0; i < 20; i++ {
		listObjectsInput := &s3.ListObjectsInput{
			Bucket:    aws.String(sfs.bucket),
			Delimiter: aws.String("/"),
			Prefix:    aws.String(keyPrefix),
		}
		if sfs.maxEntries > 0 && sfs.maxEntries < 1000 {
			listObjectsInput.MaxKeys = int32(sfs.maxEntries)
		}
		if marker != nil {
			listObjectsInput.Marker = marker
		}
		listObjectsOutput, err := sfs.s3.ListObjects(ctx, listObjectsInput)
		if err != nil {
			return nil, err
		}
		for _, commonPrefix := range listObjectsOutput.CommonPrefixes {
			entryName := fs.TrimTrailingForwardSlash(strings.TrimPrefix(aws.ToString(commonPrefix.Prefix), keyPrefix))
			if len(entryName) == 0 {
				continue
			}
			directoryEntries = append(directoryEntries, &S3DirectoryEntry{
				name:    entryName,
				dir:     true,
				modTime: sfs.bucketCreationDate,
				size:    0,
			})
			if sfs.maxEntries > 0 && len(directoryEntries) >= sfs.maxEntries {
				return directoryEntries, nil
			}
		}
		for _, object := range listObjectsOutput.Contents {
			objectKey := aws.ToString(object.Key)
			entryName := strings.TrimPrefix(objectKey, keyPrefix)
			if len(entryName) == 0 {
				// the placeholder object for the listed prefix itself
				continue
			}
			directoryEntries = append(directoryEntries, &S3DirectoryEntry{
				name:    fs.TrimTrailingForwardSlash(entryName),
				dir:     strings.HasSuffix(objectKey, "/"),
				modTime: aws.ToTime(object.LastModified),
				size:    object.Size,
			})
			if sfs.maxEntries > 0 && len(directoryEntries) >= sfs.maxEntries {
				return directoryEntries, nil
			}
		}
		if !listObjectsOutput.IsTruncated {
			break
		}
		marker = listObjectsOutput.NextMarker
	}
	return directoryEntries, nil
}

func (sfs *S3FileSystem) Stat(ctx context.Context, name string) (fs.FileInfo, error) {
	if name == "/" && len(sfs.prefix) == 0 {
		_, err := sfs.s3.HeadBucket(ctx, &s3.HeadBucketInput{
			Bucket: aws.String(sfs.bucket),
		})
		if err != nil {
			return nil, err
		}
		return NewS3FileInfo(name, sfs.bucketCreationDate, true, int64(0)), nil
	}
	directoryEntries, err := sfs.ReadDir(ctx, name)
	if err == nil && len(directoryEntries) > 0 {
		return NewS3FileInfo(name, sfs.bucketCreationDate, true, int64(0)), nil
	}
	return sfs.HeadObject(ctx, name)
}

func NewS3FileSystem(bucket string, prefix string, s3 *s3.Client, bucketCreationDate time.Time, maxEntries int) *S3FileSystem {
	return &S3FileSystem{
		bucket:             bucket,
		prefix:             prefix,
		s3:                 s3,
		bucketCreationDate: bucketCreationDate,
		maxEntries:         maxEntries,
	}
}
