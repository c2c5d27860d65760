// Package dynamodb implements the persistence ports on a single DynamoDB
// table. Every tenant's records share one partition key; the sort key
// discriminates the record kind.
package dynamodb

import "fmt"

// Entity type discriminators stored on every record.
const (
	entityTypeItem     = "ITEM"
	entityTypeOrdering = "ORDERING"
	entityTypePlaylist = "PLAYLIST"
	entityTypeProgress = "PROGRESS"
)

const (
	skOrdering     = "ORDERING"
	skPlaylist     = "PLAYLIST"
	skItemPrefix   = "ITEM#"
	gsi1MetadataSK = "METADATA"
)

func tenantPK(tenantID string) string {
	return fmt.Sprintf("TENANT#%s", tenantID)
}

func itemSK(itemID string) string {
	return skItemPrefix + itemID
}

func itemGSI1PK(itemID string) string {
	return fmt.Sprintf("ITEMID#%s", itemID)
}

func progressSK(userID string) string {
	return fmt.Sprintf("PROGRESS#%s", userID)
}
