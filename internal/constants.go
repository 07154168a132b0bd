/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	UserAgent      = "marginelo/0.2.0 (+https://github.com/mikeb26/marginelo)"
	WebCacheBucket = "bopmatic-marginelo-prod-resultscache"
	CacheKeyPrefix = "results"
)
