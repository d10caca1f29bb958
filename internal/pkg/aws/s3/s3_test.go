// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package s3

import (
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/ebhello/ebhello/internal/pkg/aws/s3/mocks"
)

type mockNamedBinary struct {
	name    string
	content []byte
}

func (m *mockNamedBinary) Name() string    { return m.name }
func (m *mockNamedBinary) Content() []byte { return m.content }

func TestS3_ZipAndUpload(t *testing.T) {
	testCases := map[string]struct {
		inBucket    string
		inKey       string
		inFiles     []NamedBinary
		mockManager func(m *mocks.Mocks3ManagerAPI)

		wantedURL string
		wantedErr error
	}{
		"zips files and returns the url of the uploaded object": {
			inBucket: "mockBucket",
			inKey:    "manual/mock-uuid/bundle.zip",
			inFiles: []NamedBinary{
				&mockNamedBinary{name: "application", content: []byte("binary")},
				&mockNamedBinary{name: "Procfile", content: []byte("web: ./application")},
			},
			mockManager: func(m *mocks.Mocks3ManagerAPI) {
				m.EXPECT().Upload(gomock.Any()).Return(&s3manager.UploadOutput{
					Location: "https://mockBucket.s3.us-west-2.amazonaws.com/manual/mock-uuid/bundle.zip",
				}, nil)
			},

			wantedURL: "https://mockBucket.s3.us-west-2.amazonaws.com/manual/mock-uuid/bundle.zip",
		},
		"wraps the error if the upload fails": {
			inBucket: "mockBucket",
			inKey:    "manual/mock-uuid/bundle.zip",
			inFiles: []NamedBinary{
				&mockNamedBinary{name: "application", content: []byte("binary")},
			},
			mockManager: func(m *mocks.Mocks3ManagerAPI) {
				m.EXPECT().Upload(gomock.Any()).Return(nil, errors.New("some error"))
			},

			wantedErr: errors.New("upload manual/mock-uuid/bundle.zip to bucket mockBucket: some error"),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockManager := mocks.NewMocks3ManagerAPI(ctrl)
			tc.mockManager(mockManager)

			client := S3{
				s3Manager: mockManager,
			}

			// WHEN
			url, err := client.ZipAndUpload(tc.inBucket, tc.inKey, tc.inFiles...)

			// THEN
			if tc.wantedErr != nil {
				require.EqualError(t, err, tc.wantedErr.Error())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantedURL, url)
		})
	}
}

func TestS3_EmptyBucket(t *testing.T) {
	batchObject1 := make([]*s3.ObjectVersion, 10)
	batchIdentifier1 := make([]*s3.ObjectIdentifier, 10)
	for i := range batchObject1 {
		batchObject1[i] = &s3.ObjectVersion{
			Key:       aws.String("mockKey"),
			VersionId: aws.String("mockVersion"),
		}
		batchIdentifier1[i] = &s3.ObjectIdentifier{
			Key:       aws.String("mockKey"),
			VersionId: aws.String("mockVersion"),
		}
	}

	testCases := map[string]struct {
		inBucket     string
		inPrefix     string
		mockS3Client func(m *mocks.Mocks3API)

		wantErr error
	}{
		"should delete all object versions under the prefix": {
			inBucket: "mockBucket",
			inPrefix: "manual/",
			mockS3Client: func(m *mocks.Mocks3API) {
				m.EXPECT().HeadBucket(&s3.HeadBucketInput{
					Bucket: aws.String("mockBucket"),
				}).Return(&s3.HeadBucketOutput{}, nil)
				m.EXPECT().ListObjectVersions(&s3.ListObjectVersionsInput{
					Bucket: aws.String("mockBucket"),
					Prefix: aws.String("manual/"),
				}).Return(&s3.ListObjectVersionsOutput{
					IsTruncated: aws.Bool(false),
					Versions:    batchObject1,
				}, nil)
				m.EXPECT().DeleteObjects(&s3.DeleteObjectsInput{
					Bucket: aws.String("mockBucket"),
					Delete: &s3.Delete{
						Objects: batchIdentifier1,
					},
				}).Return(&s3.DeleteObjectsOutput{}, nil)
			},
		},
		"should not invoke DeleteObjects if the bucket is empty": {
			inBucket: "mockBucket",
			inPrefix: "manual/",
			mockS3Client: func(m *mocks.Mocks3API) {
				m.EXPECT().HeadBucket(&s3.HeadBucketInput{
					Bucket: aws.String("mockBucket"),
				}).Return(&s3.HeadBucketOutput{}, nil)
				m.EXPECT().ListObjectVersions(&s3.ListObjectVersionsInput{
					Bucket: aws.String("mockBucket"),
					Prefix: aws.String("manual/"),
				}).Return(&s3.ListObjectVersionsOutput{
					IsTruncated: aws.Bool(false),
				}, nil)
			},
		},
		"should not return an error if the bucket does not exist": {
			inBucket: "mockBucket",
			inPrefix: "manual/",
			mockS3Client: func(m *mocks.Mocks3API) {
				m.EXPECT().HeadBucket(&s3.HeadBucketInput{
					Bucket: aws.String("mockBucket"),
				}).Return(nil, awserr.New("NotFound", "some error", nil))
			},
		},
		"should wrap the error if listing the objects fails": {
			inBucket: "mockBucket",
			inPrefix: "manual/",
			mockS3Client: func(m *mocks.Mocks3API) {
				m.EXPECT().HeadBucket(&s3.HeadBucketInput{
					Bucket: aws.String("mockBucket"),
				}).Return(&s3.HeadBucketOutput{}, nil)
				m.EXPECT().ListObjectVersions(&s3.ListObjectVersionsInput{
					Bucket: aws.String("mockBucket"),
					Prefix: aws.String("manual/"),
				}).Return(nil, errors.New("some error"))
			},

			wantErr: errors.New("list objects for bucket mockBucket: some error"),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockS3Client := mocks.NewMocks3API(ctrl)
			tc.mockS3Client(mockS3Client)

			client := S3{
				s3Client: mockS3Client,
			}

			// WHEN
			err := client.EmptyBucket(tc.inBucket, tc.inPrefix)

			// THEN
			if tc.wantErr != nil {
				require.EqualError(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
		})
	}
}
