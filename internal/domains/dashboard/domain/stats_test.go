package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	adoptiondomain "github.com/Apurer/pet-adoption-center/internal/domains/adoptions/domain"
	petdomain "github.com/Apurer/pet-adoption-center/internal/domains/pets/domain"
)

func TestTallyPets(t *testing.T) {
	pets := []*petdomain.Pet{
		{Status: petdomain.StatusAvailable},
		{Status: petdomain.StatusAvailable},
		{Status: petdomain.StatusReserved},
		{Status: petdomain.StatusAdopted},
		{Status: petdomain.StatusMedicalHold},
		nil,
	}

	assert.Equal(t, PetStats{Total: 5, Available: 2, Adopted: 1, Reserved: 1, MedicalHold: 1}, TallyPets(pets))
	assert.Equal(t, PetStats{}, TallyPets(nil))
}

func TestTallyAdoptions(t *testing.T) {
	adoptions := []*adoptiondomain.Adoption{
		{Status: adoptiondomain.StatusPending},
		{Status: adoptiondomain.StatusApplied},
		{Status: adoptiondomain.StatusCompleted},
		{Status: adoptiondomain.StatusCancelled},
		{Status: adoptiondomain.StatusCancelled},
		{Status: adoptiondomain.StatusReturned},
	}

	assert.Equal(t, AdoptionStats{Total: 6, Pending: 2, Completed: 1, Cancelled: 2, Returned: 1}, TallyAdoptions(adoptions))
}

func TestNewestCapsAndCopies(t *testing.T) {
	list := []int{9, 8, 7, 6, 5, 4, 3}

	got := Newest(list)
	assert.Equal(t, []int{9, 8, 7, 6, 5}, got)

	got[0] = 100
	assert.Equal(t, 9, list[0])
	assert.Equal(t, []int{1, 2}, Newest([]int{1, 2}))
	assert.Empty(t, Newest[int](nil))
}
