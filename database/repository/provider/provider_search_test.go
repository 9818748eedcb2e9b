package providerRepo

import (
	"testing"

	"eventra/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildSearchFilter(t *testing.T) {
	assert.Empty(t, buildSearchFilter(models.ProviderSearchCriteria{}))

	filter := buildSearchFilter(models.ProviderSearchCriteria{
		Category:  "Photography",
		Location:  "new (york)",
		MinRating: 4,
	})
	assert.Equal(t, bson.M{"$regex": "^Photography$", "$options": "i"}, filter["category"])
	assert.Equal(t, bson.M{"$regex": `new \(york\)`, "$options": "i"}, filter["location"])
	assert.Equal(t, bson.M{"$gte": 4.0}, filter["rating"])
}

func TestPopulateOwnerHidesSecrets(t *testing.T) {
	stages := populateOwner()
	assert.Len(t, stages, 3)
	project := stages[2][0].Value.(bson.M)
	assert.Equal(t, 0, project["userInfo.passwordHash"])
	assert.Equal(t, 0, project["userInfo.tokenHash"])
}
