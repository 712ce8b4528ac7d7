// SPDX-License-Identifier: GPL-3.0-or-later
package mailsync

import "github.com/CrawX/go-inbox-sentinel/domain"

type FetchResult struct {
	Record *domain.MessageRecord
	Error  error
}

// ConcurrentFetcher fans metadata lookups out over a bounded number of
// goroutines. Results keep the order of the input ids and every failed
// lookup is retried once before its error is reported.
type ConcurrentFetcher struct {
	domain.MailService
}

func (cf *ConcurrentFetcher) MetadataAll(ids []string, concurrency int) []*FetchResult {
	semaphore := make(chan bool, concurrency)
	results := make([]*FetchResult, len(ids))
	for i := 0; i < len(ids); i++ {
		semaphore <- true
		go func(index int) {
			results[index] = cf.fetch(ids[index])
			if results[index].Error != nil {
				results[index] = cf.fetch(ids[index])
			}
			<-semaphore
		}(i)
	}

	for i := 0; i < concurrency; i++ {
		semaphore <- true
	}

	return results
}

func (cf *ConcurrentFetcher) fetch(id string) *FetchResult {
	record, err := cf.Metadata(id)
	return &FetchResult{Record: record, Error: err}
}
