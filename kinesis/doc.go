// Package kinesis provides the core command/transaction framework for a
// Kinesis-style streaming API client.
//
// This package defines the building blocks every individual API operation
// plugs into: validated domain value types, a closed action enumeration,
// per-operation bidirectional codecs over JSON wire documents, a query
// builder producing signable envelopes, the generic transaction contract,
// and per-operation exception catalogs.
//
// The package is stateless and side-effect-free: encoding, decoding, and
// envelope construction are pure functions that are safe to call from any
// number of goroutines. All I/O, signing, retries, and fault dispatch live
// in external collaborators such as the httpengine subpackage.
//
// Key types:
//   - StreamName, PartitionKey, PartitionHash, SequenceNumber, ShardID:
//     validated immutable value types
//   - Action: closed enumeration of supported operations
//   - Envelope: the signable {action, body} hand-off to a signer/transport
//   - Transaction: generic binding of one Command type to one Response type
//   - FaultCatalog: documented service fault codes per operation
//
// Common usage pattern:
//
//	streamName, err := kinesis.BuildStreamName("orders")
//	if err != nil {
//		// handle error
//	}
//
//	partitionKey, err := kinesis.BuildPartitionKey("customer-42")
//	if err != nil {
//		// handle error
//	}
//
//	command, err := kinesis.BuildPutRecordCommand(streamName, payload, partitionKey)
//	if err != nil {
//		// handle error
//	}
//
//	response, metadata, err := httpengine.Execute(ctx, engine, command)
package kinesis
