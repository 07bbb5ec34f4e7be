// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blob

import (
	"bytes"
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/bitmark-inc/logger"

	"github.com/geonft/geonftd/fault"
)

const contentType = "application/octet-stream"

// S3Store - blobs in an S3 compatible bucket
type S3Store struct {
	log    *logger.L
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Store - connect to a bucket
//
// a non-empty endpoint selects path style addressing for S3
// compatible servers
func NewS3Store(ctx context.Context, configuration *Configuration) (*S3Store, error) {
	if "" == configuration.Bucket || "" == configuration.Region {
		return nil, fault.MissingParameters
	}

	options := []func(*config.LoadOptions) error{
		config.WithRegion(configuration.Region),
	}
	if "" != configuration.AccessKey {
		options = append(options, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(configuration.AccessKey, configuration.SecretKey, ""),
		))
	}
	if configuration.RetryMaxAttempts > 0 {
		options = append(options, config.WithRetryMaxAttempts(configuration.RetryMaxAttempts))
	}

	awsConfig, err := config.LoadDefaultConfig(ctx, options...)
	if nil != err {
		return nil, err
	}

	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if "" != configuration.Endpoint {
			o.BaseEndpoint = aws.String(configuration.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		log:    logger.New("blob-s3"),
		client: client,
		bucket: configuration.Bucket,
		prefix: configuration.Prefix,
	}, nil
}

// Put - upload data under its content id
func (s *S3Store) Put(ctx context.Context, data []byte) (ID, error) {
	id := IDOf(data)
	key := s.prefix + string(id)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	})
	if nil != err {
		s.log.Warnf("put: %s/%s  error: %s", s.bucket, key, err)
		return "", fault.BlobUploadFailed
	}

	s.log.Debugf("put: %s/%s  bytes: %d", s.bucket, key, len(data))
	return id, nil
}
